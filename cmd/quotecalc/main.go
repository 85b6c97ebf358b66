// Command quotecalc prints the quote estimate for a selection without
// starting the service.
//
//	quotecalc --project-type dashboard --pages 5 --feature admin --feature payment --urgency rush
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
