// SPDX-License-Identifier: MIT

package powerset_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/evidence/powerset"
)

// ExamplePowerset shows the bitmask algebra through the text syntax.
func ExamplePowerset() {
	p, err := powerset.FromLabels([]string{"A", "B", "C"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ab, _ := p.Parse("A|B")
	bc, _ := p.Parse("B|C")

	meet, _ := p.Meet(ab, bc)
	join, _ := p.Join(ab, bc)
	not, _ := p.Not(ab)

	m, _ := p.Format(meet)
	j, _ := p.Format(join)
	n, _ := p.Format(not)
	fmt.Println(m, j, n)

	all, _ := p.BottomToTop()
	names := make([]string, len(all))
	for i, e := range all {
		names[i], _ = p.Format(e)
	}
	fmt.Println(strings.Join(names, " "))
	// Output:
	// B ⊤ C
	// ⊥ A B A|B C A|C B|C ⊤
}
