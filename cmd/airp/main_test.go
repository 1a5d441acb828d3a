package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"

	"github.com/d1ced/airp"
	"github.com/d1ced/airp/internal/config"
)

func TestReadBuffer(t *testing.T) {
	tests := []struct {
		have, want string
	}{
		{"", ""},
		{"a", "\na"},
		{"a\n", "\na"},
		{"a\nb", "\na\nb"},
		{"{\n  \"x\": 1\n}\n", "\n{\n  \"x\": 1\n}"},
	}
	for _, test := range tests {
		got, err := readBuffer(strings.NewReader(test.have))
		require.NoError(t, err)
		require.Equal(t, test.want, got, "input %q", test.have)
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		cli  CLI
		in   string
		want string
	}{
		{"indented", CLI{}, `{b: [1, 2.5], a: 'x'}`,
			"{\n  \"a\": \"x\",\n  \"b\": [\n    1,\n    2.5\n  ]\n}\n"},
		{"compact", CLI{Compact: true}, "{\"a\": [true, null]}\n", "{\"a\":[true,null]}\n"},
		{"empty", CLI{}, "", "undefined\n"},
		{"indent", CLI{Indent: 4}, "[]", "    []\n"},
		{"trailing ignored", CLI{}, "1 2", "1\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			err := run(strings.NewReader(test.in), out, &test.cli, log.NewNopLogger())
			require.NoError(t, err)
			require.Equal(t, test.want, out.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(strings.NewReader(`{"a" 1}`), out, &CLI{}, log.NewNopLogger())
	require.ErrorIs(t, err, airp.ErrMissingColon)
	require.Empty(t, out.String())

	err = run(strings.NewReader("1 2"), out, &CLI{Strict: true}, log.NewNopLogger())
	require.ErrorIs(t, err, airp.ErrUnrecognizedToken)
}

func TestRunDebugLog(t *testing.T) {
	logs := &bytes.Buffer{}
	cli := &CLI{LogLevel: "debug"}
	err := run(strings.NewReader("[1]"), &bytes.Buffer{}, cli, newLogger(logs, cli.LogLevel))
	require.NoError(t, err)
	require.Contains(t, logs.String(), "msg=\"parsed input\"")
	require.Contains(t, logs.String(), "nodes=2")
}

func TestNewLoggerFilters(t *testing.T) {
	logs := &bytes.Buffer{}
	err := run(strings.NewReader("[1]"), &bytes.Buffer{}, &CLI{LogLevel: "info"}, newLogger(logs, "info"))
	require.NoError(t, err)
	require.Empty(t, logs.String())
}

func TestParseFlags(t *testing.T) {
	cfg := &config.C{Strict: true, Indent: 2, LogLevel: "warn"}
	var cli CLI
	parser, err := newParser(&cli, cfg)
	require.NoError(t, err)

	input := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(input, []byte("{}"), 0o600))

	_, err = parser.Parse([]string{"-c", "-i", input})
	require.NoError(t, err)
	require.True(t, cli.Compact)
	require.True(t, cli.Strict)
	require.Equal(t, 2, cli.Indent)
	require.Equal(t, "warn", cli.LogLevel)
	require.Equal(t, input, cli.Input)
}

func TestParseFlagsNegativeIndent(t *testing.T) {
	var cli CLI
	parser, err := newParser(&cli, &config.C{LogLevel: "info"}, kong.Writers(io.Discard, io.Discard))
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--indent=-1"})
	require.ErrorContains(t, err, "indent must be non-negative")

	_, err = parser.Parse([]string{"--indent=3"})
	require.NoError(t, err)
	require.Equal(t, 3, cli.Indent)
}

func TestExecute(t *testing.T) {
	input := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(input, []byte("{b: 1, a: [true]}"), 0o600))

	tests := []struct {
		name string
		args []string
		in   string
		code int
		want string
	}{
		{"stdin", []string{"-c"}, "[1, 2]", 0, "[1,2]\n"},
		{"file", []string{"-c", "-i", input}, "", 0, "{\"a\":[true],\"b\":1}\n"},
		{"missing file", []string{"-i", input + ".missing"}, "", 1, ""},
		{"syntax error", nil, "{a 1}", 1, ""},
		{"negative indent", []string{"--indent=-2"}, "[]", 2, ""},
		{"unknown flag", []string{"--nope"}, "[]", 2, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			code := execute(test.args, strings.NewReader(test.in), stdout, stderr)
			require.Equal(t, test.code, code, stderr.String())
			require.Equal(t, test.want, stdout.String())
			if test.code != 0 {
				require.NotEmpty(t, stderr.String())
			}
		})
	}
}
