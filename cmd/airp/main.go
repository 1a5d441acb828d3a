// Command airp reads a document from a file or stdin and prints it back
// indented, or reports the syntax error.
package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/d1ced/airp"
	"github.com/d1ced/airp/internal/config"
)

// CLI defines the command-line interface. Defaults come from the
// environment, see internal/config.
type CLI struct {
	Input    string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Compact  bool   `help:"Print without whitespace." short:"c" default:"${compact}"`
	Strict   bool   `help:"Reject content after the first value." short:"s" default:"${strict}"`
	Indent   int    `help:"Initial indentation in spaces." default:"${indent}"`
	LogLevel string `help:"Log level (debug, info, warn, error)." enum:"debug,info,warn,error" default:"${log_level}"`
}

// Validate is run by kong once the flags are parsed.
func (c *CLI) Validate() error {
	if c.Indent < 0 {
		return errors.Errorf("indent must be non-negative, got %d", c.Indent)
	}
	return nil
}

func newParser(cli *CLI, cfg *config.C, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(cli, append([]kong.Option{
		kong.Name("airp"),
		kong.Description("Parse a lenient JSON document and print it indented."),
		kong.UsageOnError(),
		cfg.Vars(),
	}, options...)...)
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command with args and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := newLogger(stderr, "info")
	cfg, err := config.Load(nil)
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		return 2
	}
	var cli CLI
	parser, err := newParser(&cli, cfg, kong.Writers(stdout, stderr))
	if err != nil {
		level.Error(logger).Log("msg", "can not build command line", "err", err)
		return 2
	}
	if _, err := parser.Parse(args); err != nil {
		parser.Errorf("%s", err)
		return 2
	}
	logger = newLogger(stderr, cli.LogLevel)

	in := stdin
	if cli.Input != "" {
		f, err := os.Open(cli.Input)
		if err != nil {
			level.Error(logger).Log("msg", "can not open input", "err", err)
			return 1
		}
		defer f.Close()
		in = f
	}
	if err := run(in, stdout, &cli, logger); err != nil {
		level.Error(logger).Log("msg", "rejected input", "err", err)
		return 1
	}
	return 0
}

// run parses all of r and writes the rendered value to w.
func run(r io.Reader, w io.Writer, cli *CLI, logger log.Logger) error {
	buf, err := readBuffer(r)
	if err != nil {
		return err
	}
	var (
		v *airp.Value
		n = len(buf)
	)
	if cli.Strict {
		v, err = airp.ParseStrict(buf)
	} else {
		v, n, err = airp.Parse(buf)
	}
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "parsed input", "bytes", len(buf), "consumed", n,
		"kind", v.Kind(), "nodes", v.Total())
	if cli.LogLevel == "debug" {
		level.Debug(logger).Log("msg", "value tree", "tree", spew.Sdump(v))
	}
	if cli.Compact {
		_, err = v.WriteJSON(w)
	} else {
		_, err = airp.Fprint(w, v, cli.Indent, false)
	}
	if err != nil {
		return errors.Wrap(err, "print")
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// readBuffer reads r line by line and joins the lines, each one preceded by
// a newline.
func readBuffer(r io.Reader) (string, error) {
	var b strings.Builder
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			b.WriteByte('\n')
			b.WriteString(strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return "", errors.Wrap(err, "read input")
		}
	}
}
