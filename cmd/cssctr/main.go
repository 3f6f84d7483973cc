/*
Command cssctr computes CSS counters, list markers and generated content
for HTML documents.

Usage:

	cssctr render [--format tree|lines|dot] [--css sheet.css] [--no-ua] document.html

Style sheets are taken from <style> elements of the document, and optionally
from an additional style sheet file. Configuration is read from a file
given with --config. Keys are:

	tracing            tracing adapter, default "go"
	tracelevel.root    trace level of the root tracer
	tracelevel.<key>   trace level of a single tracer, e.g. counters.gencontent
	cssctr.uastyles    apply user-agent list styles, default true
	cssctr.markersuffix  suffix of numeric list markers, default ". "

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/counters/dom/gencontent"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagConfig string
	flagTrace  string
)

// conf is set up in the pre-run hook of the root command.
var conf schuko.Configuration

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "cssctr",
	Short:         "Compute CSS counters and generated content for HTML documents",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}
		conf = c
		if flagTrace != "" {
			return setupTracing(traceLevels{Configuration: c, level: flagTrace})
		}
		return setupTracing(c)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "configuration file")
	rootCmd.PersistentFlags().StringVar(&flagTrace, "trace", "", "trace level: Debug|Info|Error")
	rootCmd.AddCommand(renderCmd)
}

// loadConfig sets up a viper based configuration with default values. If
// path is not empty, the configuration file at path is read.
func loadConfig(path string) (*viperadapter.VConf, error) {
	c := viperadapter.New("cssctr")
	c.InitDefaults()
	viper.SetDefault("tracelevel.root", "Error")
	viper.SetDefault("cssctr.uastyles", true)
	viper.SetDefault("cssctr.markersuffix", gencontent.DefaultMarkerSuffix)
	if path == "" {
		return c, nil
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading configuration %s: %w", path, err)
	}
	return c, nil
}

// traceLevels overrides the trace levels of a configuration with a single
// level for all tracers.
type traceLevels struct {
	schuko.Configuration
	level string
}

func (c traceLevels) GetString(key string) string {
	if strings.HasPrefix(key, "tracelevel") {
		return c.level
	}
	return c.Configuration.GetString(key)
}

// setupTracing installs a trace2go root tracer, configured from c. Tracers
// are created on demand and pick up their level from keys "tracelevel.<key>".
func setupTracing(c schuko.Configuration) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(c, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
