// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/evidence/belief"
	"github.com/katalvlaran/evidence/codec"
)

type transformFlags struct {
	to         string
	lattice    string
	assignment string
}

func newTransformCmd(a *app) *cobra.Command {
	var flags transformFlags
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Convert one assignment between belief representations",
		Long: "transform reads a lattice and an assignment over it and prints the\n" +
			"assignment converted by the named transform.\n\nTransforms: " +
			strings.Join(belief.Names(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTransform(cmd, a, flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.to, "to", "", "transform name (required)")
	f.StringVarP(&flags.lattice, "lattice", "l", "", "lattice file (required)")
	f.StringVarP(&flags.assignment, "assignment", "a", "", "assignment file (required)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("lattice")
	_ = cmd.MarkFlagRequired("assignment")

	return cmd
}

func runTransform(cmd *cobra.Command, a *app, flags transformFlags) error {
	t, err := belief.Lookup[code](flags.to)
	if errors.Is(err, belief.ErrUnknownTransform) {
		return fmt.Errorf("%w (known: %s)", err, strings.Join(belief.Names(), ", "))
	}
	if err != nil {
		return err
	}

	frame, err := readLattice(flags.lattice)
	if err != nil {
		return err
	}
	fh, err := os.Open(flags.assignment)
	if err != nil {
		return err
	}
	defer fh.Close()
	doc, err := codec.DecodeAssignmentDoc(fh)
	if err != nil {
		return fmt.Errorf("%s: %w", flags.assignment, err)
	}
	m, err := codec.DecodeAssignment[code](frame, doc)
	if err != nil {
		return fmt.Errorf("%s: %w", flags.assignment, err)
	}

	out, err := t(frame, m)
	if err != nil {
		return err
	}
	a.logger.Debug("transformed", zap.String("transform", flags.to), zap.Int("focal", out.Len()))

	return codec.WriteAssignment[code](cmd.OutOrStdout(), frame, out)
}

func readLattice(path string) (codec.Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	doc, err := codec.DecodeLattice(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	frame, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return frame, nil
}
