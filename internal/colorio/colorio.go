// Package colorio implements the handful of colorized output styles the
// CLI uses.
package colorio

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Style identifies how a piece of text should be rendered.
type Style int

const (
	// Plain is the standard, unstyled way.
	Plain Style = iota
	// Highlight is a bold, bright style for leading fields like job ids.
	Highlight
	// Green marks success.
	Green
	// Red marks failure.
	Red
	// Yellow marks in-between conditions.
	Yellow
)

// Choice controls when escape sequences are emitted.
type Choice string

const (
	// Auto colors only when the stream is a terminal.
	Auto Choice = "auto"
	// Always colors unconditionally.
	Always Choice = "always"
	// Never suppresses all color.
	Never Choice = "never"
)

// CIO writes styled text to a stdout/stderr pair.
type CIO struct {
	stdout io.Writer
	stderr io.Writer
	styles map[Style]*color.Color
}

// New builds a CIO over the process's real standard streams.
func New(choice Choice) *CIO {
	return NewWithWriters(os.Stdout, os.Stderr, choice)
}

// NewWithWriters builds a CIO over arbitrary writers; tests use this.
func NewWithWriters(stdout, stderr io.Writer, choice Choice) *CIO {
	styles := map[Style]*color.Color{
		Highlight: color.New(color.FgHiWhite, color.Bold),
		Green:     color.New(color.FgGreen),
		Red:       color.New(color.FgRed),
		Yellow:    color.New(color.FgYellow),
	}
	for _, c := range styles {
		switch choice {
		case Always:
			c.EnableColor()
		case Never:
			c.DisableColor()
		}
		// Auto keeps the library's own terminal detection.
	}
	return &CIO{stdout: stdout, stderr: stderr, styles: styles}
}

// Print writes styled text to stdout.
func (c *CIO) Print(style Style, format string, args ...any) {
	c.fprint(c.stdout, style, format, args...)
}

// Println writes styled text to stdout and ends the line unstyled.
func (c *CIO) Println(style Style, format string, args ...any) {
	c.fprint(c.stdout, style, format, args...)
	fmt.Fprintln(c.stdout)
}

// EPrint writes styled text to stderr.
func (c *CIO) EPrint(style Style, format string, args ...any) {
	c.fprint(c.stderr, style, format, args...)
}

// EPrintln writes styled text to stderr and ends the line unstyled.
func (c *CIO) EPrintln(style Style, format string, args ...any) {
	c.fprint(c.stderr, style, format, args...)
	fmt.Fprintln(c.stderr)
}

func (c *CIO) fprint(w io.Writer, style Style, format string, args ...any) {
	if s, ok := c.styles[style]; ok {
		s.Fprintf(w, format, args...)
		return
	}
	fmt.Fprintf(w, format, args...)
}
