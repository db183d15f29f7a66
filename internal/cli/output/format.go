// Package output renders sgctl command results as tables, JSON, or YAML.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Format selects how command results are rendered.
type Format string

const (
	// FormatTable renders results as an aligned text table.
	FormatTable Format = "table"
	// FormatJSON renders results as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders results as YAML.
	FormatYAML Format = "yaml"
)

// ANSI color codes for status messages.
const (
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiReset  = "\033[0m"
)

// ParseFormat parses the --output flag value. The empty string means table.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: table, json, yaml)", s)
	}
}

func (f Format) String() string {
	return string(f)
}

// Printer writes command results in a fixed format, with optional ANSI
// color for status messages.
type Printer struct {
	out    io.Writer
	format Format
	color  bool
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, format Format, color bool) *Printer {
	return &Printer{out: out, format: format, color: color}
}

// DefaultPrinter writes tables to stdout with color enabled.
func DefaultPrinter() *Printer {
	return NewPrinter(os.Stdout, FormatTable, true)
}

// Format returns the printer's output format.
func (p *Printer) Format() Format {
	return p.format
}

// Writer returns the printer's output writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// ColorEnabled returns whether color output is enabled.
func (p *Printer) ColorEnabled() bool {
	return p.color
}

// Print renders data in the configured format. Table format requires data
// to implement TableRenderer; anything else falls back to JSON.
func (p *Printer) Print(data any) error {
	switch p.format {
	case FormatTable:
		if renderer, ok := data.(TableRenderer); ok {
			return PrintTable(p.out, renderer)
		}
		return PrintJSON(p.out, data)
	case FormatJSON:
		return PrintJSON(p.out, data)
	case FormatYAML:
		return PrintYAML(p.out, data)
	default:
		return fmt.Errorf("unknown format: %s", p.format)
	}
}

// Println prints a message followed by a newline.
func (p *Printer) Println(args ...any) {
	_, _ = fmt.Fprintln(p.out, args...)
}

// Printf prints a formatted message.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) status(code, msg string) {
	if p.color {
		_, _ = fmt.Fprintf(p.out, "%s%s%s\n", code, msg, ansiReset)
		return
	}
	_, _ = fmt.Fprintln(p.out, msg)
}

// Success prints msg in green when color is enabled.
func (p *Printer) Success(msg string) {
	p.status(ansiGreen, msg)
}

// Error prints msg in red when color is enabled.
func (p *Printer) Error(msg string) {
	p.status(ansiRed, msg)
}

// Warning prints msg in yellow when color is enabled.
func (p *Printer) Warning(msg string) {
	p.status(ansiYellow, msg)
}
