// SPDX-License-Identifier: MIT

// Command hyplane inspects isometries of the hyperbolic plane: classify a
// matrix, convert it between the four coordinate models, report fixed
// points and axes, or run a YAML batch of such jobs.
//
// A matrix is given as row-major entries in the coordinate conventions of
// its model: four entries for the 2x2 models (UHP, PD), nine for the 3x3
// models (KM, HM). Entries use Go number syntax, so "1.5", "2i" and
// "0.5+0.5i" all parse.
package main

import "os"

// version is stamped at release time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
