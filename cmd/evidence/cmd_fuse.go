// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evidence/fusion"
	"github.com/katalvlaran/evidence/metrics"
)

type fuseFlags struct {
	file     string
	parallel int
	metrics  bool
}

func newFuseCmd(a *app) *cobra.Command {
	var flags fuseFlags
	cmd := &cobra.Command{
		Use:   "fuse",
		Short: "Run the fusions of a YAML job file",
		Long: "fuse reads a job naming a lattice, a referee and a list of fusions,\n" +
			"runs the fusions concurrently and prints their results as YAML.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFuse(cmd, a, flags)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.file, "file", "f", "", "job file (required)")
	f.IntVarP(&flags.parallel, "parallel", "p", 1, "maximum concurrent fusions")
	f.BoolVar(&flags.metrics, "metrics", false, "print fusion metrics to stderr")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runFuse(cmd *cobra.Command, a *app, flags fuseFlags) error {
	if flags.parallel < 1 {
		return fmt.Errorf("--parallel must be at least 1, got %d", flags.parallel)
	}
	fh, err := os.Open(flags.file)
	if err != nil {
		return err
	}
	defer fh.Close()
	job, err := decodeJob(fh)
	if err != nil {
		return fmt.Errorf("%s: %w", flags.file, err)
	}

	var (
		reg *prometheus.Registry
		obs fusion.Observer
	)
	if flags.metrics {
		reg = prometheus.NewRegistry()
		c, err := metrics.New(reg)
		if err != nil {
			return err
		}
		obs = c
	}

	r, err := newRunner(job, a.logger, obs)
	if err != nil {
		return err
	}
	out, err := r.runAll(cmd.Context(), job.Fusions, flags.parallel)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if reg != nil {
		return metrics.WriteText(cmd.ErrOrStderr(), reg)
	}

	return nil
}
