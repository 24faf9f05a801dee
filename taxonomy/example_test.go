// SPDX-License-Identifier: MIT

package taxonomy_test

import (
	"fmt"

	"github.com/katalvlaran/evidence/taxonomy"
)

// ExampleTaxonomy builds a small classification and combines taxa.
func ExampleTaxonomy() {
	tx, err := taxonomy.New(taxonomy.Node("Object",
		taxonomy.Node("Ground", taxonomy.Leaf("Car", 0.2), taxonomy.Leaf("Truck", 0.15), taxonomy.Leaf("Bike", 0.15)),
		taxonomy.Node("Air", taxonomy.Leaf("Airplane", 0.1), taxonomy.Leaf("UAV", 0.1)),
		taxonomy.Node("Water", taxonomy.Leaf("Ship", 0.1), taxonomy.Leaf("Boat", 0.15)),
		taxonomy.Node("Amphibian", taxonomy.Leaf("Hovercraft", 0.05)),
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	car, _ := tx.Parse("Car")
	truck, _ := tx.Parse("Truck")
	ground, _ := tx.Parse("Ground")
	air, _ := tx.Parse("Air")

	for _, e := range []struct{ a, b string }{
		{"Car", "Truck"},
		{"Car", "Hovercraft"},
	} {
		x, _ := tx.Parse(e.a)
		y, _ := tx.Parse(e.b)
		j, _ := tx.Join(x, y)
		s, _ := tx.Format(j)
		fmt.Printf("%s ∨ %s = %s\n", e.a, e.b, s)
	}
	m1, _ := tx.Meet(ground, car)
	m2, _ := tx.Meet(air, truck)
	s1, _ := tx.Format(m1)
	s2, _ := tx.Format(m2)
	fmt.Println("Ground ∧ Car =", s1)
	fmt.Println("Air ∧ Truck =", s2)
	// Output:
	// Car ∨ Truck = Ground
	// Car ∨ Hovercraft = Object
	// Ground ∧ Car = Car
	// Air ∧ Truck = ⊥
}
