package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/uri-core/cliout"
	"github.com/jongio/uri-core/uri"
)

// parseResult is one line of parse output.
type parseResult struct {
	Input      string          `json:"input" yaml:"input"`
	Components *uri.Components `json:"components,omitempty" yaml:"components,omitempty"`
	Error      string          `json:"error,omitempty" yaml:"error,omitempty"`
}

func newParseCommand(opts *rootOptions) *cobra.Command {
	var delimiter string

	cmd := &cobra.Command{
		Use:   "parse [uri...]",
		Short: "Parse one or more URIs",
		Long: `Parse each URI argument into scheme, host, optional port and path segments.

With no arguments, one URI is read from each non-blank line of standard input.
The command fails if any input has an invalid port, after printing every result.`,
		Example: `  urictl parse http://www.example.com:8080/foo/bar
  urictl parse -d : urn:book:fantasy:Hobbit
  cat uris.txt | urictl parse -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if delimiter == "" {
				delimiter = opts.cfg.PathDelimiter
			}

			inputs := args
			if len(inputs) == 0 {
				lines, err := readLines(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				inputs = lines
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no URIs given")
			}

			results := parseAll(inputs, delimiter)
			if err := printResults(results); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed to parse", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "", "Path segment delimiter (default from config, \"/\")")
	return cmd
}

func parseAll(inputs []string, delimiter string) []parseResult {
	results := make([]parseResult, 0, len(inputs))
	for _, input := range inputs {
		c, err := uri.ParseString(input, delimiter)
		if err != nil {
			results = append(results, parseResult{Input: input, Error: err.Error()})
			continue
		}
		results = append(results, parseResult{Input: input, Components: &c})
	}
	return results
}

// readLines returns the non-blank lines of r without line terminators.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func printResults(results []parseResult) error {
	var data any = results
	if len(results) == 1 {
		data = results[0]
	}
	return cliout.Print(data, func() {
		for _, r := range results {
			printResult(r)
		}
	})
}

func printResult(r parseResult) {
	cliout.Header(r.Input)
	if r.Error != "" {
		cliout.Error("%s", r.Error)
		return
	}

	c := r.Components
	cliout.Label("Scheme", orNone(c.Scheme))
	cliout.Label("Host", orNone(c.Host))
	if c.HasPort {
		cliout.Label("Port", strconv.Itoa(int(c.Port)))
	} else {
		cliout.Label("Port", "(none)")
	}
	cliout.Label("Absolute", strconv.FormatBool(c.IsAbsolute()))

	if len(c.Path) == 0 {
		cliout.Label("Path", "(empty)")
		return
	}
	cliout.Label("Path", fmt.Sprintf("%d segments split on %q", len(c.Path), c.PathDelimiter))
	rows := make([]cliout.TableRow, 0, len(c.Path))
	for i, seg := range c.Path {
		rows = append(rows, cliout.TableRow{"#": strconv.Itoa(i), "Segment": strconv.Quote(seg)})
	}
	cliout.Table([]string{"#", "Segment"}, rows)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
