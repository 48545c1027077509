// Package ui holds the colored output helpers of the rubberband CLI.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Palette
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Error prints err in red to w, prefixed with the program name.
func Error(w io.Writer, err error) {
	Bad.Fprintf(w, "rubberband: %v\n", err)
}

// KV prints an aligned key/value line.
func KV(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "  %s %v\n", Subtle.Sprintf("%-16s", key), value)
}
