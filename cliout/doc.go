// Package cliout formats urictl output for terminals and scripts.
//
// # Output Formats
//
// Three formats are supported:
//   - default: human-readable text with ANSI colors and Unicode symbols
//   - json: indented JSON for automation
//   - yaml: YAML for config-style consumers
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    return err
//	}
//	return cliout.Print(components, func() {
//	    cliout.Label("Scheme", components.Scheme)
//	})
//
// # Colors
//
// Colors are enabled only when stdout is a terminal (golang.org/x/term) and
// NO_COLOR is unset. NoColor and ForceColor override the detection.
//
// # Unicode Detection
//
// Unix-like systems are assumed to render Unicode symbols. On Windows the
// package looks for Windows Terminal, VS Code, ConEmu or PowerShell and falls
// back to ASCII symbols otherwise.
//
// # Testing
//
// SetOutput redirects everything the package prints:
//
//	var buf bytes.Buffer
//	cliout.SetOutput(&buf)
//	defer cliout.SetOutput(os.Stdout)
package cliout
