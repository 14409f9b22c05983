package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIDot     = "*"
)

var (
	mu           sync.RWMutex
	globalFormat           = FormatDefault
	out          io.Writer = os.Stdout
	colorEnabled           = detectColor(os.Stdout)
)

var supportsUnicode = detectUnicodeSupport()

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func detectColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(w)
}

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	if os.Getenv("WT_SESSION") != "" || os.Getenv("TERM_PROGRAM") == "vscode" {
		return true
	}
	if os.Getenv("ConEmuPID") != "" {
		return true
	}
	if os.Getenv("PSModulePath") != "" || os.Getenv("POWERSHELL_DISTRIBUTION_CHANNEL") != "" {
		return true
	}
	return os.Getenv("TERM") != ""
}

func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetOutput redirects all output and re-runs color detection for w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	colorEnabled = detectColor(w)
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	colorEnabled = true
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	colorEnabled = false
	mu.Unlock()
}

func writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

// paint wraps text in color when colors are enabled.
func paint(color, text string) string {
	mu.RLock()
	enabled := colorEnabled
	mu.RUnlock()
	if !enabled {
		return text
	}
	return color + text + Reset
}

func printf(format string, args ...any) {
	fmt.Fprintf(writer(), format, args...)
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	var f Format
	switch strings.ToLower(format) {
	case "default", "":
		f = FormatDefault
	case "json":
		f = FormatJSON
	case "yaml", "yml":
		f = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}

	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// IsStructured returns true for machine-readable formats (JSON or YAML).
func IsStructured() bool {
	f := GetFormat()
	return f == FormatJSON || f == FormatYAML
}

// PrintJSON prints data as indented JSON.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(writer())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data as YAML.
func PrintYAML(data any) error {
	encoder := yaml.NewEncoder(writer())
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
func Print(data any, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	default:
		formatter()
		return nil
	}
}

// Header prints a bold header with a divider
func Header(text string) {
	printf("\n%s\n", paint(Bold, text))
	printf("%s\n", strings.Repeat("=", len(text)))
}

// Success prints a success message with green checkmark
func Success(format string, args ...any) {
	printf("%s %s\n", paint(BrightGreen, getIcon(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Error prints an error message with red X
func Error(format string, args ...any) {
	printf("%s %s\n", paint(BrightRed, getIcon(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...any) {
	printf("%s  %s\n", paint(BrightYellow, getIcon(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Info prints an info message with blue info icon
func Info(format string, args ...any) {
	printf("%s  %s\n", paint(BrightBlue, getIcon(SymbolInfo, ASCIIInfo)), fmt.Sprintf(format, args...))
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...any) {
	printf("  %s %s\n", getIcon(SymbolDot, ASCIIDot), fmt.Sprintf(format, args...))
}

// Label prints a label and value pair
func Label(label, value string) {
	printf("   %s %s\n", paint(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// Newline prints a blank line
func Newline() {
	printf("\n")
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	var b strings.Builder
	b.WriteString("   ")
	for _, header := range headers {
		b.WriteString(paint(Bold, fmt.Sprintf("%-*s", widths[header], header)) + "  ")
	}
	b.WriteString("\n   ")
	for _, header := range headers {
		b.WriteString(strings.Repeat("─", widths[header]) + "  ")
	}
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("   ")
		for _, header := range headers {
			fmt.Fprintf(&b, "%-*s  ", widths[header], row[header])
		}
		b.WriteString("\n")
	}
	printf("%s", b.String())
}
