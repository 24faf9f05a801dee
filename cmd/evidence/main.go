// SPDX-License-Identifier: MIT

// Command evidence fuses mass assignments described in YAML files.
//
//	evidence fuse -f job.yaml --parallel 4 --metrics
//	evidence transform --to mass-to-pignistic -l lattice.yaml -a mass.yaml
//	evidence version
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd(&app{buildLogger: productionLogger}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
