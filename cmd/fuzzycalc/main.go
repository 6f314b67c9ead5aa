// SPDX-License-Identifier: MIT

// Command fuzzycalc evaluates fuzzy-number expressions from the command line.
//
//	fuzzycalc add 1,2,3 2,3,4
//	fuzzycalc cut 1,2,3 0.25
//	fuzzycalc --cuts 11 apply cos -- -1.5708,0,1.5708
//
// Shapes are written as one value (crisp), three values (triangular) or four
// values (trapezoidal), comma separated. Put "--" before arguments that start
// with a minus sign.
package main

import (
	"os"

	"github.com/katalvlaran/lvfuzzy/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
