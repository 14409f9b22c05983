package cliout

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// capture redirects output into a buffer for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stdout)
		_ = SetFormat("default")
	})
	return &buf
}

func TestSetFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatDefault},
		{in: "default", want: FormatDefault},
		{in: "json", want: FormatJSON},
		{in: "YAML", want: FormatYAML},
		{in: "yml", want: FormatYAML},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.NoError(t, SetFormat("default"))
			err := SetFormat(tt.in)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid output format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, GetFormat())
		})
	}
	require.NoError(t, SetFormat("default"))
}

func TestIsStructured(t *testing.T) {
	capture(t)

	assert.False(t, IsStructured())
	require.NoError(t, SetFormat("json"))
	assert.True(t, IsJSON())
	assert.True(t, IsStructured())
	require.NoError(t, SetFormat("yaml"))
	assert.False(t, IsJSON())
	assert.True(t, IsStructured())
}

func TestBufferIsNotTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestNoColorOnBuffer(t *testing.T) {
	buf := capture(t)

	Success("done %d", 3)
	assert.NotContains(t, buf.String(), "\033[")
	assert.Contains(t, buf.String(), "done 3")
}

func TestForceColor(t *testing.T) {
	buf := capture(t)
	ForceColor()

	Error("boom")
	assert.Contains(t, buf.String(), BrightRed)
	assert.Contains(t, buf.String(), "boom")

	NoColor()
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{name: "warning", fn: func() { Warning("careful") }, want: "careful"},
		{name: "info", fn: func() { Info("note %s", "x") }, want: "note x"},
		{name: "bullet", fn: func() { Bullet("item") }, want: "item"},
		{name: "label", fn: func() { Label("Scheme", "http") }, want: "Scheme:"},
		{name: "header", fn: func() { Header("URI") }, want: "==="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.fn()
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestTable(t *testing.T) {
	buf := capture(t)

	Table([]string{"#", "Segment"}, []TableRow{
		{"#": "0", "Segment": ""},
		{"#": "1", "Segment": "foo"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Segment")
	assert.Contains(t, lines[3], "foo")
}

func TestTableEmpty(t *testing.T) {
	buf := capture(t)
	Table([]string{"a"}, nil)
	assert.Empty(t, buf.String())
}

func TestPrint(t *testing.T) {
	data := map[string]any{"scheme": "http", "path": []string{"", "a"}}

	t.Run("default uses formatter", func(t *testing.T) {
		buf := capture(t)
		called := false
		require.NoError(t, Print(data, func() { called = true }))
		assert.True(t, called)
		assert.Empty(t, buf.String())
	})

	t.Run("json", func(t *testing.T) {
		buf := capture(t)
		require.NoError(t, SetFormat("json"))
		require.NoError(t, Print(data, func() { t.Fatal("formatter must not run") }))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "http", decoded["scheme"])
	})

	t.Run("yaml", func(t *testing.T) {
		buf := capture(t)
		require.NoError(t, SetFormat("yaml"))
		require.NoError(t, Print(data, func() { t.Fatal("formatter must not run") }))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "http", decoded["scheme"])
	})
}
