package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jongio/uri-core/testutil"
	"github.com/jongio/uri-core/version"
)

func execute(t *testing.T, stdin string, args ...string) testutil.Result {
	t.Helper()
	return testutil.Execute(t, newRootCommand(version.New("urictl")), stdin, args...)
}

func TestParse_JSONSingle(t *testing.T) {
	res := execute(t, "", "parse", "-o", "json", "http://www.example.com:8080/foo/bar")
	require.NoError(t, res.Err)

	var got parseResult
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &got))
	require.NotNil(t, got.Components)
	assert.Equal(t, "http://www.example.com:8080/foo/bar", got.Input)
	assert.Equal(t, "www.example.com", got.Components.Host)
	assert.Equal(t, uint16(8080), got.Components.Port)
	assert.Equal(t, []string{"", "foo", "bar"}, got.Components.Path)
}

func TestParse_DelimiterFlag(t *testing.T) {
	res := execute(t, "", "parse", "-o", "json", "-d", "/-", "urn:bo-/ok/-fan/tasy/-Hob-bit")
	require.NoError(t, res.Err)

	var got parseResult
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &got))
	assert.Equal(t, []string{"bo-/ok", "fan/tasy", "Hob-bit"}, got.Components.Path)
}

func TestParse_HumanReadable(t *testing.T) {
	res := execute(t, "", "parse", "--no-color", "http://www.example.com/foo/bar", "urn:book:fantasy:Hobbit")
	require.NoError(t, res.Err)

	for _, want := range []string{
		"http://www.example.com/foo/bar",
		"Scheme:",
		"www.example.com",
		`"foo"`,
		"urn:book:fantasy:Hobbit",
		`"book:fantasy:Hobbit"`,
		"(none)",
	} {
		assert.Contains(t, res.Stdout, want)
	}
}

func TestParse_EmptyPathHumanReadable(t *testing.T) {
	res := execute(t, "", "parse", "--no-color", "http://example.com")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "(empty)")
}

func TestParse_Stdin(t *testing.T) {
	res := execute(t, "urn:a:b\n\n  \nhttp://h/x\r\n", "parse", "-o", "json", "-d", ":")
	require.NoError(t, res.Err)

	var got []parseResult
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "urn:a:b", got[0].Input)
	assert.Equal(t, []string{"a", "b"}, got[0].Components.Path)
	assert.Equal(t, "http://h/x", got[1].Input)
}

func TestParse_NoInput(t *testing.T) {
	res := execute(t, "\n", "parse")
	assert.ErrorContains(t, res.Err, "no URIs given")
}

func TestParse_InvalidPortStillPrintsOthers(t *testing.T) {
	res := execute(t, "", "parse", "-o", "json", "http://ok/", "http://bad:65536/", "http://bad:-1111/")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "2 of 3 inputs failed to parse")

	var got []parseResult
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &got))
	require.Len(t, got, 3)
	assert.NotNil(t, got[0].Components)
	assert.Contains(t, got[1].Error, "invalid port")
	assert.Nil(t, got[2].Components)
}

func TestParse_YAMLOutput(t *testing.T) {
	res := execute(t, "", "parse", "-o", "yaml", "http://h:81/a")
	require.NoError(t, res.Err)

	var got parseResult
	require.NoError(t, yaml.Unmarshal([]byte(res.Stdout), &got))
	assert.Equal(t, uint16(81), got.Components.Port)
}

func TestParse_ConfigFile(t *testing.T) {
	dir := testutil.TempDir(t)
	cfgPath := testutil.WriteFile(t, dir, ".urictl.yaml", "pathDelimiter: \":\"\noutput: json\n")

	res := execute(t, "", "--config", cfgPath, "parse", "urn:book:fantasy:Hobbit")
	require.NoError(t, res.Err)

	var got parseResult
	require.NoError(t, json.Unmarshal([]byte(res.Stdout), &got))
	assert.Equal(t, []string{"book", "fantasy", "Hobbit"}, got.Components.Path)
}

func TestParse_FlagOverridesConfig(t *testing.T) {
	dir := testutil.TempDir(t)
	cfgPath := testutil.WriteFile(t, dir, "c.yaml", "output: yaml\n")

	res := execute(t, "", "--config", cfgPath, "-o", "json", "parse", "a")
	require.NoError(t, res.Err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(res.Stdout), "{"))
}

func TestRoot_InvalidOutput(t *testing.T) {
	res := execute(t, "", "parse", "-o", "xml", "a")
	assert.ErrorContains(t, res.Err, "invalid output format")
}

func TestRoot_MissingConfig(t *testing.T) {
	res := execute(t, "", "--config", "/does/not/exist.yaml", "parse", "a")
	assert.ErrorContains(t, res.Err, "failed to read config")
}

func TestRoot_DebugLogsToStderr(t *testing.T) {
	res := execute(t, "", "--debug", "parse", "a")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stderr, "configuration loaded")
}

func TestVersion_Quiet(t *testing.T) {
	res := execute(t, "", "version", "--quiet")
	require.NoError(t, res.Err)
	assert.Equal(t, "0.0.0-dev", strings.TrimSpace(res.Stdout))
}

func TestServe_BadAddress(t *testing.T) {
	res := execute(t, "", "serve", "--addr", "127.0.0.1:99999")
	assert.ErrorContains(t, res.Err, "failed to listen")
}

func TestServe_NegativeRateLimit(t *testing.T) {
	res := execute(t, "", "serve", "--rate-limit", "-1")
	assert.ErrorContains(t, res.Err, "--rate-limit cannot be negative")
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("a\r\n\nb\n  c  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "  c  "}, lines)
}
