package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jongio/uri-core/cliout"
)

// Result holds the outcome of Execute.
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// Execute runs cmd with args, feeding stdin and capturing both output streams.
// cliout output is redirected to the captured stdout and restored afterwards,
// together with the default output format.
func Execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) Result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	cliout.SetOutput(&stdout)
	t.Cleanup(func() {
		cliout.SetOutput(os.Stdout)
		_ = cliout.SetFormat("default")
	})

	err := cmd.Execute()
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// CaptureOutput captures os.Stdout during function execution.
// The original stdout is always restored, even if the function returns an error.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Buffered to avoid a goroutine leak.
	outCh := make(chan string, 1)
	go func() {
		var output bytes.Buffer
		_, _ = output.ReadFrom(r)
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout
	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}
	return output
}

// TempDir creates a temporary directory removed when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "urictl-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})
	return tmpDir
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
