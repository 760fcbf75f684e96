// Package cli implements the influxqs command line tool.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rulego/influxqs"
	"github.com/rulego/influxqs/config"
	"github.com/rulego/influxqs/logger"
	"github.com/rulego/influxqs/types"
)

// flags shared by every subcommand
type rootFlags struct {
	configPath   string
	measurement  string
	whitelist    []string
	blacklist    []string
	parseBoolean bool
	parseArray   bool
	logLevel     string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "influxqs",
		Short: "Translate URL query strings into InfluxQL",
		Long: `influxqs turns API query parameters into InfluxQL SELECT statements.

  influxqs render --measurement events 'startTime>2020-06-16&sort=-startTime&limit=10'

Filters are key=value pairs with =, !=, >, >=, < and <= operators; the
fields, sort, limit, aggregate and fill parameters decorate the query.
Queries are read from the arguments or, when none are given, one per line
from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&f.measurement, "measurement", "m", "", "measurement used in the FROM clause")
	pf.StringSliceVar(&f.whitelist, "whitelist", nil, "fields allowed in the query")
	pf.StringSliceVar(&f.blacklist, "blacklist", nil, "fields never allowed in the query")
	pf.BoolVar(&f.parseBoolean, "parse-boolean", false, "treat true/false as booleans")
	pf.BoolVar(&f.parseArray, "parse-array", false, "split comma separated values into arrays")
	pf.StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error, off)")

	cmd.AddCommand(newRenderCmd(f))
	cmd.AddCommand(newParseCmd(f))
	cmd.AddCommand(newCastersCmd(f))
	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// newParser applies the config file first and explicit flags on top of it.
func (f *rootFlags) newParser(cmd *cobra.Command) (*influxqs.Parser, error) {
	level, err := logger.ParseLevel(f.logLevel)
	if err != nil {
		return nil, err
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"}).
		Level(logger.ZerologLevel(level)).
		With().Timestamp().Str("component", "influxqs").Logger()

	cfg := types.NewConfig()
	if f.configPath != "" {
		loaded, err := config.LoadWithEnvOverrides(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	opts := []influxqs.Option{
		influxqs.WithConfig(cfg),
		influxqs.WithLogger(logger.NewZerologLogger(zl, level)),
	}
	// Visit only walks flags set on the command line
	cmd.Flags().Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "measurement":
			opts = append(opts, influxqs.WithMeasurement(f.measurement))
		case "whitelist":
			opts = append(opts, influxqs.WithWhitelist(f.whitelist...))
		case "blacklist":
			opts = append(opts, influxqs.WithBlacklist(f.blacklist...))
		case "parse-boolean":
			opts = append(opts, influxqs.WithParseBoolean(f.parseBoolean))
		case "parse-array":
			opts = append(opts, influxqs.WithParseArray(f.parseArray))
		}
	})
	return influxqs.New(opts...)
}

// queries returns args, or the non-empty lines of in when args is empty.
func queries(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var out []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}
	return out, nil
}
