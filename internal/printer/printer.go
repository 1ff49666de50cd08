// SPDX-License-Identifier: MIT

// Package printer writes CLI output: role-colored grids, listings and
// formatted errors.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/katalvlaran/lvqec/lattice"
)

// ColorMode selects when ANSI colors are emitted.
type ColorMode int

const (
	// ColorAuto colors only when stdout is a terminal and NO_COLOR is unset.
	ColorAuto ColorMode = iota
	// ColorOn always colors.
	ColorOn
	// ColorOff never colors.
	ColorOff
)

// ParseColorMode maps "auto", "on", "off" to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "on", "always":
		return ColorOn, nil
	case "off", "never":
		return ColorOff, nil
	default:
		return 0, fmt.Errorf("printer: unknown color mode %q (want auto, on or off)", s)
	}
}

// Printer formats output for one pair of streams.
type Printer struct {
	out, errOut io.Writer

	data, xAnc, zAnc *color.Color
	green, yellow    *color.Color
	red, cyan        *color.Color
}

// New returns a Printer writing to out and errOut.
func New(out, errOut io.Writer, mode ColorMode) *Printer {
	p := &Printer{
		out:    out,
		errOut: errOut,
		data:   color.New(color.FgWhite, color.Bold),
		xAnc:   color.New(color.FgRed),
		zAnc:   color.New(color.FgBlue),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed, color.Bold),
		cyan:   color.New(color.FgCyan),
	}
	enabled := colorEnabled(out, mode)
	for _, c := range []*color.Color{p.data, p.xAnc, p.zAnc, p.green, p.yellow, p.red, p.cyan} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// colorEnabled resolves mode against the destination stream.
func colorEnabled(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Out returns the standard output stream.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Grid renders l with data qubits bold, X ancillas red and Z ancillas blue.
func (p *Printer) Grid(l *lattice.Lattice) error {
	return l.WriteGrid(p.out, func(s lattice.Site, label string) string {
		switch s.Role {
		case lattice.Data:
			return p.data.Sprint(label)
		case lattice.XAncilla:
			return p.xAnc.Sprint(label)
		case lattice.ZAncilla:
			return p.zAnc.Sprint(label)
		default:
			return label
		}
	})
}

// Info prints a plain line.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

// Success prints a green line with a check mark.
func (p *Printer) Success(format string, a ...any) {
	p.green.Fprintf(p.out, "✓ %s\n", fmt.Sprintf(format, a...))
}

// Step prints a cyan progress line.
func (p *Printer) Step(format string, a ...any) {
	p.cyan.Fprintf(p.out, "→ %s\n", fmt.Sprintf(format, a...))
}

// Warning prints a yellow line to the error stream.
func (p *Printer) Warning(format string, a ...any) {
	p.yellow.Fprintf(p.errOut, "⚠️  %s\n", fmt.Sprintf(format, a...))
}

// Error prints a titled error with an explanation and suggestions to the
// error stream and returns a short error for cobra.
func (p *Printer) Error(title, explanation string, suggestions ...string) error {
	p.red.Fprintf(p.errOut, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(p.errOut, "\n%s\n", explanation)
	}
	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(p.errOut, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(p.errOut, "\nEither:\n")
		for i, s := range suggestions {
			fmt.Fprintf(p.errOut, "  %d. %s\n", i+1, s)
		}
	}

	return fmt.Errorf("%s", title)
}
