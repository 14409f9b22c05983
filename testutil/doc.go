// Package testutil provides helpers for testing urictl commands.
//
// This package includes helpers for:
//   - Running a cobra command with captured stdout/stderr and fed stdin (Execute)
//   - Capturing os.Stdout during a function call (CaptureOutput)
//   - Creating temporary directories and files with automatic cleanup (TempDir, WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestParse(t *testing.T) {
//	    res := testutil.Execute(t, newRootCommand(), "", "parse", "-o", "json", "urn:a:b")
//	    if res.Err != nil {
//	        t.Fatal(res.Err)
//	    }
//	    if !strings.Contains(res.Stdout, `"scheme": "urn"`) {
//	        t.Errorf("unexpected output: %s", res.Stdout)
//	    }
//	}
package testutil
