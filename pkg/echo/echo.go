// Package echo provides the greeting and raw text output operations.
//
// Print treats its input as an opaque literal: printf-style directives
// embedded in the text are written out as-is, never interpreted. Callers
// that need to know whether a string would have been dangerous through a
// C-style printf can inspect it with FormatDirectives.
package echo

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer writes greeting and text output to a single destination.
type Printer struct {
	out io.Writer
}

// New creates a Printer bound to standard output.
func New() *Printer {
	return &Printer{out: os.Stdout}
}

// NewWithWriter creates a Printer with a custom output writer (useful for
// testing).
func NewWithWriter(w io.Writer) *Printer {
	return &Printer{out: w}
}

// HelloWorld writes the fixed greeting line. It is stateless: repeated
// calls produce identical output.
func (p *Printer) HelloWorld() {
	fmt.Fprint(p.out, "Hello, world!\n")
}

// Print writes text verbatim, with no trailing newline and no directive
// interpretation.
func (p *Printer) Print(text string) {
	io.WriteString(p.out, text)
}

var std = New()

// HelloWorld writes the fixed greeting to standard output.
func HelloWorld() {
	std.HelloWorld()
}

// Print writes text verbatim to standard output.
func Print(text string) {
	std.Print(text)
}

// formatFlags are the characters that may appear between a percent sign
// and its verb: flags, width, and precision.
const formatFlags = "+-# 0123456789.*"

// FormatDirectives returns the printf-style directives embedded in text,
// in order of appearance. A doubled percent ("%%") is a literal percent
// and is not reported; a bare trailing percent is reported as "%". The
// result is nil when text contains no directives.
func FormatDirectives(text string) []string {
	var dirs []string
	for i := 0; i < len(text); {
		if text[i] != '%' {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && strings.IndexByte(formatFlags, text[j]) >= 0 {
			j++
		}
		if j >= len(text) {
			dirs = append(dirs, text[i:])
			break
		}
		if text[j] == '%' && j == i+1 {
			i = j + 1
			continue
		}
		dirs = append(dirs, text[i:j+1])
		i = j + 1
	}
	return dirs
}
