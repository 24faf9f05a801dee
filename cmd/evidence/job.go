// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"lukechampine.com/uint128"

	"github.com/katalvlaran/evidence/assignment"
	"github.com/katalvlaran/evidence/belief"
	"github.com/katalvlaran/evidence/codec"
	"github.com/katalvlaran/evidence/fusion"
)

type code = uint128.Uint128

// errInvalidJob wraps job validation failures.
var errInvalidJob = errors.New("invalid job")

var validate = validator.New()

// Job is the fuse command's input document.
type Job struct {
	Lattice   codec.LatticeDoc `yaml:"lattice"`
	Referee   string           `yaml:"referee" validate:"required,oneof=dempster conjunctive disjunctive pcr6"`
	SizeRange *SizeRange       `yaml:"size_range,omitempty"`
	Pruner    string           `yaml:"pruner,omitempty" validate:"omitempty,oneof=join meet"`
	Transform string           `yaml:"transform,omitempty"`
	Fusions   []FusionJob      `yaml:"fusions" validate:"required,min=1,unique=Name,dive"`
}

// SizeRange sets the engine's pruning thresholds.
type SizeRange struct {
	Mid int `yaml:"mid" validate:"gte=1"`
	Max int `yaml:"max" validate:"gtefield=Mid"`
}

// FusionJob is one independent fusion of the job.
type FusionJob struct {
	Name    string   `yaml:"name" validate:"required"`
	Sources []Source `yaml:"sources" validate:"required,min=1,dive"`
}

// Source is one mass assignment, optionally discounted by its reliability.
// Its weights are normalized before fusion.
type Source struct {
	Mass        codec.AssignmentDoc `yaml:"mass" validate:"required,min=1"`
	Reliability *float64            `yaml:"reliability,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// FusionOutput is one entry of the fuse command's output.
type FusionOutput struct {
	Name      string              `yaml:"name"`
	Conflict  float64             `yaml:"conflict"`
	Mass      codec.AssignmentDoc `yaml:"mass"`
	Transform codec.AssignmentDoc `yaml:"transform,omitempty"`
}

// decodeJob reads a job, rejecting unknown fields, and validates it.
func decodeJob(r io.Reader) (*Job, error) {
	var j Job
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("decode job: %w", err)
	}
	if err := validate.Struct(&j); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidJob, err)
	}
	if j.Transform != "" {
		if _, err := belief.Lookup[code](j.Transform); err != nil {
			return nil, fmt.Errorf("%w: %w", errInvalidJob, err)
		}
	}

	return &j, nil
}

// engineOptions translates the job's settings.
func (j *Job) engineOptions(logger *zap.Logger, obs fusion.Observer) []fusion.Option {
	opts := []fusion.Option{fusion.WithLogger(logger)}
	if j.SizeRange != nil {
		opts = append(opts, fusion.WithSizeRange(j.SizeRange.Mid, j.SizeRange.Max))
	}
	if j.Pruner == fusion.PruneMeet.String() {
		opts = append(opts, fusion.WithPruner(fusion.PruneMeet))
	}
	if obs != nil {
		opts = append(opts, fusion.WithObserver(obs))
	}

	return opts
}

// runner executes the fusions of one job against a shared lattice.
type runner struct {
	frame     codec.Frame
	engine    *fusion.Discounted[code]
	referee   fusion.Referee[code]
	transform belief.Transform[code]
	logger    *zap.Logger
}

func newRunner(j *Job, logger *zap.Logger, obs fusion.Observer) (*runner, error) {
	frame, err := j.Lattice.Build()
	if err != nil {
		return nil, fmt.Errorf("lattice: %w", err)
	}
	ref, err := fusion.RefereeByName[code](j.Referee)
	if err != nil {
		return nil, err
	}
	r := &runner{
		frame:   frame,
		engine:  fusion.New[code](j.engineOptions(logger, obs)...),
		referee: ref,
		logger:  logger,
	}
	if j.Transform != "" {
		if r.transform, err = belief.Lookup[code](j.Transform); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// runAll fuses every job entry with at most parallel concurrent fusions.
// Results keep the job's order.
func (r *runner) runAll(ctx context.Context, fusions []FusionJob, parallel int) ([]FusionOutput, error) {
	out := make([]FusionOutput, len(fusions))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range fusions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.run(fusions[i])
			if err != nil {
				return fmt.Errorf("fusion %q: %w", fusions[i].Name, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *runner) run(fj FusionJob) (FusionOutput, error) {
	bbas := make([]*assignment.Assignment[code], len(fj.Sources))
	for i, s := range fj.Sources {
		a, err := r.source(s)
		if err != nil {
			return FusionOutput{}, fmt.Errorf("source %d: %w", i, err)
		}
		bbas[i] = a
	}

	fused, conflict, err := r.engine.Fuse(r.frame, r.referee, bbas)
	if err != nil {
		return FusionOutput{}, err
	}
	res := FusionOutput{Name: fj.Name, Conflict: conflict}
	if res.Mass, err = codec.EncodeAssignment[code](r.frame, fused); err != nil {
		return FusionOutput{}, err
	}
	if r.transform != nil {
		t, err := r.transform(r.frame, fused)
		if err != nil {
			return FusionOutput{}, fmt.Errorf("transform: %w", err)
		}
		if res.Transform, err = codec.EncodeAssignment[code](r.frame, t); err != nil {
			return FusionOutput{}, err
		}
	}
	r.logger.Debug("fusion done", zap.String("name", fj.Name), zap.Float64("conflict", conflict))

	return res, nil
}

// source decodes, normalizes and discounts one source.
func (r *runner) source(s Source) (*assignment.Assignment[code], error) {
	a, err := codec.DecodeAssignment[code](r.frame, s.Mass)
	if err != nil {
		return nil, err
	}
	b := a.Builder(a.Len()+1, a.Len()+1)
	if err := b.Normalize(); err != nil {
		return nil, err
	}
	a = b.Freeze()
	if s.Reliability == nil {
		return a, nil
	}

	return fusion.Discount[code](r.frame, a, *s.Reliability)
}
