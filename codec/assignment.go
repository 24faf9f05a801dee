// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// AssignmentDoc maps element text to weight.
type AssignmentDoc map[string]float64

// DecodeAssignmentDoc reads an assignment document.
func DecodeAssignmentDoc(r io.Reader) (AssignmentDoc, error) {
	var d AssignmentDoc
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode assignment: %w", err)
	}

	return d, nil
}

// DecodeAssignment parses every key of d against l. Keys naming the same
// element add up.
func DecodeAssignment[X lattice.Element[X]](l lattice.Lattice[X], d AssignmentDoc) (*assignment.Assignment[X], error) {
	b := assignment.NewBuilder[X](l.Hash(), len(d)+1, len(d)+1)
	for text, w := range d {
		e, err := l.Parse(text)
		if err != nil {
			return nil, err
		}
		if _, err := b.Push(e, w); err != nil {
			return nil, fmt.Errorf("element %q: %w", text, err)
		}
	}

	return b.Freeze(), nil
}

// EncodeAssignment renders a against l.
func EncodeAssignment[X lattice.Element[X]](l lattice.Lattice[X], a *assignment.Assignment[X]) (AssignmentDoc, error) {
	d := make(AssignmentDoc, a.Len())
	for _, e := range a.Entries() {
		text, err := l.Format(e.Element)
		if err != nil {
			return nil, err
		}
		d[text] += e.Weight
	}

	return d, nil
}

// WriteAssignment encodes a as YAML; keys are written in sorted order.
func WriteAssignment[X lattice.Element[X]](w io.Writer, l lattice.Lattice[X], a *assignment.Assignment[X]) error {
	d, err := EncodeAssignment[X](l, a)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}

	return enc.Close()
}
