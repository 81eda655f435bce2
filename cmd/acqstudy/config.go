package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/linqs/srinivasan-mlj20/internal/method"
)

// errUsage means usage has been printed and the process should exit 1.
var errUsage = errors.New("usage")

type cliConfig struct {
	Method       string
	Base         string
	DatasetsPath string
	JSONPath     string
	Table        bool
	ServeAddr    string
	EnvPath      string
	Verbose      bool
}

func parseArgs(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("acqstudy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Base, "base", ".", "Project root holding results/ and data/")
	fs.StringVar(&cfg.DatasetsPath, "datasets", "", "YAML file with dataset evaluation predicates (overrides built-in datasets)")
	fs.StringVar(&cfg.JSONPath, "json", "", "Also write the report as JSON to this path")
	fs.BoolVar(&cfg.Table, "table", false, "Print a summary table to stdout")
	fs.StringVar(&cfg.ServeAddr, "serve", "", "Serve the report over HTTP on this address (e.g. :8080) until interrupted")
	fs.StringVar(&cfg.EnvPath, "env", "", "Path to a .env file with sink settings (default $ENV_PATH)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Debug logging")
	fs.Usage = func() { usage(fs, stderr) }

	for _, a := range args {
		if isHelp(a) {
			fs.Usage()
			return cfg, errUsage
		}
	}

	if err := fs.Parse(args); err != nil {
		return cfg, errUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, errUsage
	}

	cfg.Method = fs.Arg(0)
	return cfg, nil
}

// isHelp accepts h and help in any case and with any number of hyphens.
func isHelp(arg string) bool {
	a := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(arg)), "-", "")
	return a == "h" || a == "help"
}

func usage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "USAGE: acqstudy [flags] <method>\n")
	fmt.Fprintf(w, "  method: one of %s\n\n", strings.Join(method.Supported(), ", "))
	fmt.Fprintf(w, "Aggregates the acquisition study results of a method into\n")
	fmt.Fprintf(w, "<method>_performance.csv and <method>_timing.csv.\n\nFlags:\n")
	fs.PrintDefaults()
}
