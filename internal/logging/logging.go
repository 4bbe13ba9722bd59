// Package logging builds the root hclog logger shared by both front-ends.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// DefaultName is the root logger name
const DefaultName = "ytfetch"

// Options configures New
type Options struct {
	Name   string
	Level  string // trace, debug, info, warn, error
	JSON   bool
	Output io.Writer
}

// New creates the root logger. Unknown levels fall back to info.
func New(opts Options) hclog.Logger {
	name := opts.Name
	if name == "" {
		name = DefaultName
	}
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Info
	}

	color := hclog.AutoColor
	if opts.JSON {
		color = hclog.ColorOff
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            name,
		Level:           level,
		Output:          output,
		JSONFormat:      opts.JSON,
		IncludeLocation: level <= hclog.Debug,
		Color:           color,
	})
}
