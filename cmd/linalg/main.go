// SPDX-License-Identifier: MIT

// Command linalg evaluates determinants, inverses, LU factors, products and
// linear solves from the command line.
//
// Matrices are given row-major:
//
//	linalg det --rows 3 --cols 3 --values 1,2,3,0,4,5,1,0,6
//	linalg solve --rows 3 --cols 3 --values 2,1,-1,-3,-1,2,-2,1,2 --b 8,-11,-3
//	linalg mul --rows 2 --cols 3 --values 1,2,3,4,5,6 --b-cols 2 --b 7,8,9,10,11,12
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
