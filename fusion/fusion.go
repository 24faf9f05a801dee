// SPDX-License-Identifier: MIT

package fusion

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/lattice"
)

// Sentinel errors for fusion.
var (
	// ErrNoSources indicates Fuse was called without assignments.
	ErrNoSources = errors.New("fusion: no source assignments")

	// ErrTotalConflict indicates the referee discarded all mass.
	ErrTotalConflict = errors.New("fusion: remaining mass is zero")

	// ErrMassOverflow indicates a referee call whose sub-weights sum above 1.
	ErrMassOverflow = errors.New("fusion: referee produced more than unit mass")

	// ErrSeqMismatch indicates FuseSeq got referee and source lists of different lengths.
	ErrSeqMismatch = errors.New("fusion: referee and sequence counts differ")
)

// Result is one fused assignment with its conflict.
type Result[X lattice.Element[X]] struct {
	Assignment *assignment.Assignment[X]
	Conflict   float64
}

// Discounted is the fusion engine. It holds only configuration and is safe
// for concurrent use.
type Discounted[X lattice.Element[X]] struct {
	opts Options
}

// New returns an engine configured by opts.
func New[X lattice.Element[X]](opts ...Option) *Discounted[X] {
	return &Discounted[X]{opts: gatherOptions(opts)}
}

// SizeRange returns the pruning thresholds (mid, max).
func (d *Discounted[X]) SizeRange() (mid, limit int) { return d.opts.lengthMid, d.opts.lengthMax }

// Fuse combines bbas with ref over l and returns the normalized result and
// the conflict, the share of the supplied mass that ref discarded:
//
//	conflict = 1 − Σ kept / Σ products
//
// Sources need not be normalized. For normalized sources Σ products is 1
// and conflict is 1 − Σ kept.
//
// Errors:
//   - ErrNoSources when bbas is empty.
//   - assignment.ErrHashMismatch, wrapped with the source index.
//   - referee errors, wrapped with the combination's position.
//   - ErrMassOverflow when one referee call returned sub-weights summing
//     above 1.
//   - ErrTotalConflict when no mass remains to normalize.
func (d *Discounted[X]) Fuse(l lattice.Lattice[X], ref Referee[X], bbas []*assignment.Assignment[X]) (*assignment.Assignment[X], float64, error) {
	if len(bbas) == 0 {
		return nil, 0, ErrNoSources
	}
	entries := make([][]assignment.Entry[X], len(bbas))
	for i, a := range bbas {
		if a.Hash() != l.Hash() {
			return nil, 0, fmt.Errorf("Fuse: source %d: %w", i, assignment.ErrHashMismatch)
		}
		entries[i] = a.Entries()
	}

	prune := d.pruner(l)
	acc := assignment.NewBuilder[X](l.Hash(), d.opts.lengthMid, d.opts.lengthMax)
	combinations := 0
	var supplied float64

	odometer := make([]int, len(entries))
	chosen := make([]lattice.SafeElement[X], len(entries))
	for exhausted := emptyFactor(entries); !exhausted; exhausted = advance(odometer, entries) {
		product := 1.0
		for i, k := range odometer {
			chosen[i] = entries[i][k].Element
			product *= entries[i][k].Weight
		}
		combinations++
		supplied += product

		out, err := ref.FromConditions(l, bbas, chosen)
		if err != nil {
			return nil, 0, fmt.Errorf("Fuse: combination %v: %w", odometer, err)
		}
		var share float64
		for _, e := range out {
			share += e.Weight
		}
		if share > 1+assignment.Epsilon {
			return nil, 0, fmt.Errorf("Fuse: combination %v: share %v: %w", odometer, share, ErrMassOverflow)
		}
		for _, e := range out {
			if _, err := acc.Push(e.Element, e.Weight*product); err != nil {
				return nil, 0, fmt.Errorf("Fuse: combination %v: %w", odometer, err)
			}
		}
		if acc.Len() > d.opts.lengthMax {
			d.prune(acc, prune)
		}
	}
	d.prune(acc, prune)

	kept, err := acc.CumulWeight()
	if err != nil {
		return nil, 0, err
	}
	if acc.Len() == 0 || supplied <= 0 {
		return nil, 0, ErrTotalConflict
	}
	conflict := min(max(1-kept/supplied, 0), 1)
	if err := acc.Normalize(); err != nil {
		return nil, 0, err
	}

	d.opts.observer.ObserveFusion(len(bbas), combinations, conflict)
	d.opts.logger.Debug("fused",
		zap.Int("sources", len(bbas)),
		zap.Int("combinations", combinations),
		zap.Int("focal", acc.Len()),
		zap.Float64("conflict", conflict))

	return acc.Freeze(), conflict, nil
}

// FuseSeq runs Fuse once per position of refs and seqs.
//
// Errors: ErrSeqMismatch, or the first Fuse error wrapped with its position.
func (d *Discounted[X]) FuseSeq(l lattice.Lattice[X], refs []Referee[X], seqs [][]*assignment.Assignment[X]) ([]Result[X], error) {
	if len(refs) != len(seqs) {
		return nil, fmt.Errorf("FuseSeq: %d referees, %d sequences: %w", len(refs), len(seqs), ErrSeqMismatch)
	}
	out := make([]Result[X], len(seqs))
	for i := range seqs {
		a, z, err := d.Fuse(l, refs[i], seqs[i])
		if err != nil {
			return nil, fmt.Errorf("FuseSeq[%d]: %w", i, err)
		}
		out[i] = Result[X]{Assignment: a, Conflict: z}
	}

	return out, nil
}

func (d *Discounted[X]) pruner(l lattice.Lattice[X]) func(x, y lattice.SafeElement[X]) lattice.SafeElement[X] {
	if d.opts.pruner == PruneMeet {
		return l.UnsafeMeet
	}

	return l.UnsafeJoin
}

func (d *Discounted[X]) prune(acc *assignment.Builder[X], pruner func(x, y lattice.SafeElement[X]) lattice.SafeElement[X]) {
	before := acc.Len()
	acc.Prune(pruner)
	if after := acc.Len(); after != before {
		d.opts.observer.ObservePrune(before, after)
		d.opts.logger.Debug("pruned", zap.Int("before", before), zap.Int("after", after))
	}
}

// emptyFactor reports whether some source has no focal element, which makes
// the product empty.
func emptyFactor[X lattice.Element[X]](entries [][]assignment.Entry[X]) bool {
	for _, e := range entries {
		if len(e) == 0 {
			return true
		}
	}

	return false
}

// advance steps the odometer, last source fastest. It reports true once every
// combination has been visited.
func advance[X lattice.Element[X]](odometer []int, entries [][]assignment.Entry[X]) bool {
	for i := len(odometer) - 1; i >= 0; i-- {
		odometer[i]++
		if odometer[i] < len(entries[i]) {
			return false
		}
		odometer[i] = 0
	}

	return true
}
