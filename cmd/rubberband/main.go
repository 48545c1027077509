// rubberband is a terminal graph canvas with marquee selection and edge
// auto-pan.
//
// Run: go run ./cmd/rubberband/
package main

import (
	"os"

	"github.com/wesen/rubberband/internal/ui"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		ui.Error(os.Stderr, err)
		os.Exit(1)
	}
}
