// SPDX-License-Identifier: MIT

package fusion

import "go.uber.org/zap"

// Defaults.
const (
	// DefaultLengthMid is the size pruning reduces the result to.
	DefaultLengthMid = 64

	// DefaultLengthMax is the size above which the result is pruned.
	DefaultLengthMax = 128
)

const (
	panicSizeRange = "fusion: WithSizeRange: need 1 ≤ mid ≤ max"
	panicPruner    = "fusion: WithPruner: unknown prune strategy"
)

// PruneStrategy selects how two light focal elements are merged.
type PruneStrategy uint8

const (
	// PruneJoin merges into the join (least common generalization).
	PruneJoin PruneStrategy = iota

	// PruneMeet merges into the meet.
	PruneMeet
)

// String returns the strategy name.
func (s PruneStrategy) String() string {
	switch s {
	case PruneJoin:
		return "join"
	case PruneMeet:
		return "meet"
	}

	return "unknown"
}

// Option configures a Discounted engine.
type Option func(*Options)

// Options holds the resolved engine settings.
type Options struct {
	lengthMid int           // DefaultLengthMid
	lengthMax int           // DefaultLengthMax
	pruner    PruneStrategy // PruneJoin
	logger    *zap.Logger   // zap.NewNop()
	observer  Observer      // no-op
}

// DefaultOptions returns the documented defaults: size range
// [DefaultLengthMid, DefaultLengthMax], PruneJoin, no logging, no observer.
func DefaultOptions() Options {
	return Options{
		lengthMid: DefaultLengthMid,
		lengthMax: DefaultLengthMax,
		pruner:    PruneJoin,
		logger:    zap.NewNop(),
		observer:  nopObserver{},
	}
}

// WithSizeRange sets the inclusive size range [mid, limit] of the result:
// above limit focal elements it is pruned down to mid.
// Panics unless 1 ≤ mid ≤ limit.
func WithSizeRange(mid, limit int) Option {
	if mid < 1 || limit < mid {
		panic(panicSizeRange)
	}

	return func(o *Options) {
		o.lengthMid = mid
		o.lengthMax = limit
	}
}

// WithPruner selects the merge used when pruning. Panics on unknown values.
func WithPruner(s PruneStrategy) Option {
	if s != PruneJoin && s != PruneMeet {
		panic(panicPruner)
	}

	return func(o *Options) { o.pruner = s }
}

// WithLogger routes debug events to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		l = zap.NewNop()
	}

	return func(o *Options) { o.logger = l }
}

// WithObserver reports fusion and prune events to obs.
func WithObserver(obs Observer) Option {
	if obs == nil {
		obs = nopObserver{}
	}

	return func(o *Options) { o.observer = obs }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
