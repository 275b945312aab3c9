// Package main provides the datefmt command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"datefmt/internal/output"
)

// errReported marks failures whose details were already printed.
var errReported = errors.New("failed")

type app struct {
	outCfg   output.Config
	out      *output.Output
	stdin    io.Reader
	verbose  bool
	logLevel string
}

func newRootCmd(outCfg output.Config, stdin io.Reader) *cobra.Command {
	a := &app{outCfg: outCfg, stdin: stdin}

	root := &cobra.Command{
		Use:           "datefmt",
		Short:         "Format, parse and convert dates with %-code patterns.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.outCfg.Verbose = a.verbose
			a.out = output.New(a.outCfg)
			return a.setupLogging(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print per-file details")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warning", "log level (panic, fatal, error, warning, info, debug, trace)")

	root.AddCommand(
		a.formatCmd(),
		a.parseCmd(),
		a.convertCmd(),
		a.watchCmd(),
		a.validateCmd(),
		a.tokensCmd(),
	)

	return root
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	level := a.logLevel
	if a.verbose && !cmd.Flags().Changed("log-level") {
		level = "debug"
	}
	return a.applyLogLevel(level)
}

func (a *app) applyLogLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	logrus.SetOutput(a.outCfg.ErrWriter)
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	logrus.SetLevel(level)
	return nil
}

func main() {
	root := newRootCmd(output.DefaultConfig(), os.Stdin)
	if err := root.Execute(); err != nil {
		if err != errReported {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
