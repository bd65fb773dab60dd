// Cotton Tracker - a command-line tool for recording daily piece-rate
// cotton collection work.
package main

import (
	"os"

	"github.com/SolunkeSiddharth/cottontracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
