// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by every command.
type app struct {
	verbose     bool
	logger      *zap.Logger
	buildLogger func(verbose bool) (*zap.Logger, error)
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "evidence",
		Short: "Fuse belief mass assignments over powerset and taxonomy lattices",
		Long: "evidence combines mass assignments from independent sources with a\n" +
			"chosen fusion rule and converts them between belief representations.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(*cobra.Command, []string) error {
			l, err := a.buildLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log fusion events at debug level")

	root.AddCommand(newFuseCmd(a))
	root.AddCommand(newTransformCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}
