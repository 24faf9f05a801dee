// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"lukechampine.com/uint128"

	"github.com/katalvlaran/evidence/lattice"
	"github.com/katalvlaran/evidence/powerset"
	"github.com/katalvlaran/evidence/taxonomy"
)

// Lattice kinds.
const (
	KindPowerset = "powerset"
	KindTaxonomy = "taxonomy"
)

// DefaultLeafWeight is the weight of a taxonomy leaf declared without one.
const DefaultLeafWeight = 1.0

// Sentinel errors for documents.
var (
	// ErrInvalidDocument wraps validation failures.
	ErrInvalidDocument = errors.New("codec: invalid document")

	// ErrInnerWeight indicates a weight on a taxon that has children.
	ErrInnerWeight = errors.New("codec: only leaf taxa carry a weight")
)

var validate = validator.New()

// Frame is the lattice every document builds.
type Frame = lattice.Frame[uint128.Uint128]

// TaxonDoc is one taxon of a taxonomy document. A taxon without children
// is a leaf.
type TaxonDoc struct {
	Name     string     `yaml:"name" validate:"required"`
	Weight   *float64   `yaml:"weight,omitempty" validate:"omitempty,gte=0"`
	Children []TaxonDoc `yaml:"children,omitempty" validate:"dive"`
}

// LatticeDoc is the YAML form of a lattice.
type LatticeDoc struct {
	Kind           string    `yaml:"kind" validate:"required,oneof=powerset taxonomy"`
	Leaves         []string  `yaml:"leaves,omitempty" validate:"required_if=Kind powerset,max=128,dive,required"`
	Priors         []float64 `yaml:"priors,omitempty" validate:"omitempty,dive,gte=0"`
	Taxonomy       *TaxonDoc `yaml:"taxonomy,omitempty" validate:"required_if=Kind taxonomy"`
	IterationLimit int       `yaml:"iteration_limit,omitempty" validate:"gte=0"`
}

// Validate checks the document's structural constraints.
func (d *LatticeDoc) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// Build validates d and constructs its lattice.
func (d *LatticeDoc) Build() (Frame, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if d.Kind == KindPowerset {
		var opts []powerset.Option
		if d.Priors != nil {
			for _, v := range d.Priors {
				if math.IsInf(v, 0) || math.IsNaN(v) {
					return nil, fmt.Errorf("%w: prior %v", ErrInvalidDocument, v)
				}
			}
			opts = append(opts, powerset.WithPriors(d.Priors))
		}
		if d.IterationLimit > 0 {
			opts = append(opts, powerset.WithIterationLimit(d.IterationLimit))
		}
		p, err := powerset.FromLabels(d.Leaves, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	}

	root, err := d.Taxonomy.builder()
	if err != nil {
		return nil, err
	}
	var opts []taxonomy.Option
	if d.IterationLimit > 0 {
		opts = append(opts, taxonomy.WithIterationLimit(d.IterationLimit))
	}
	t, err := taxonomy.New(root, opts...)
	if err != nil {
		return nil, err
	}

	return t, nil
}

func (t *TaxonDoc) builder() (taxonomy.Builder, error) {
	if len(t.Children) == 0 {
		w := DefaultLeafWeight
		if t.Weight != nil {
			w = *t.Weight
		}
		return taxonomy.Leaf(t.Name, w), nil
	}
	if t.Weight != nil {
		return taxonomy.Builder{}, fmt.Errorf("taxon %q: %w", t.Name, ErrInnerWeight)
	}
	children := make([]taxonomy.Builder, len(t.Children))
	for i := range t.Children {
		c, err := t.Children[i].builder()
		if err != nil {
			return taxonomy.Builder{}, err
		}
		children[i] = c
	}

	return taxonomy.Node(t.Name, children...), nil
}

// DecodeLattice reads and validates a lattice document.
func DecodeLattice(r io.Reader) (*LatticeDoc, error) {
	var d LatticeDoc
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode lattice: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// PowersetDoc describes p.
func PowersetDoc(p *powerset.Powerset) *LatticeDoc {
	d := &LatticeDoc{Kind: KindPowerset, Leaves: p.Labels()}
	for _, wl := range p.WeightedLeaves() {
		d.Priors = append(d.Priors, wl.Weight)
	}

	return d
}

// TaxonomyDoc describes t.
func TaxonomyDoc(t *taxonomy.Taxonomy) *LatticeDoc {
	taxa := t.Taxa()
	byCode := make(map[taxonomy.Code]taxonomy.Taxon, len(taxa))
	for _, tx := range taxa {
		byCode[tx.Code] = tx
	}
	var walk func(tx taxonomy.Taxon) TaxonDoc
	walk = func(tx taxonomy.Taxon) TaxonDoc {
		doc := TaxonDoc{Name: tx.Name}
		if tx.IsLeaf() {
			w := tx.Weight
			doc.Weight = &w
			return doc
		}
		for _, c := range tx.Children {
			doc.Children = append(doc.Children, walk(byCode[c]))
		}
		return doc
	}
	root := walk(taxa[0])

	return &LatticeDoc{Kind: KindTaxonomy, Taxonomy: &root}
}
