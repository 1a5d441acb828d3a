// Package config holds the settings of the airp command that can be given
// through the environment.
package config

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"go-simpler.org/env"
)

// LogLevels accepted by the command, from most to least verbose.
var LogLevels = []string{"debug", "info", "warn", "error"}

// C is the configuration of the airp command. Command line flags take their
// defaults from it.
type C struct {
	Compact  bool   `env:"AIRP_COMPACT" default:"false" usage:"print without indentation"`
	Strict   bool   `env:"AIRP_STRICT" default:"false" usage:"reject content after the first value"`
	Indent   int    `env:"AIRP_INDENT" default:"0" usage:"initial indentation in spaces"`
	LogLevel string `env:"AIRP_LOG_LEVEL" default:"info" usage:"one of debug, info, warn, error"`
}

// Load reads C from src, or from the process environment if src is nil.
func Load(src env.Source) (*C, error) {
	c := &C{}
	opts := &env.Options{}
	if src != nil {
		opts.Source = src
	}
	if err := env.Load(c, opts); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the values of c.
func (c *C) Validate() error {
	if c.Indent < 0 {
		return fmt.Errorf("AIRP_INDENT must not be negative, got %d", c.Indent)
	}
	for _, l := range LogLevels {
		if c.LogLevel == l {
			return nil
		}
	}
	return fmt.Errorf("AIRP_LOG_LEVEL %q is not one of %v", c.LogLevel, LogLevels)
}

// Vars exposes c as kong interpolation variables.
func (c *C) Vars() kong.Vars {
	return kong.Vars{
		"compact":   strconv.FormatBool(c.Compact),
		"strict":    strconv.FormatBool(c.Strict),
		"indent":    strconv.Itoa(c.Indent),
		"log_level": c.LogLevel,
	}
}
