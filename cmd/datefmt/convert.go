package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"datefmt/internal/config"
	"datefmt/internal/converter"
	"datefmt/internal/watcher"
)

// loadConfig loads and validates the configuration at path, printing every
// finding. The configuration's log level applies unless --log-level was given.
func (a *app) loadConfig(cmd *cobra.Command, path string) (*config.Configuration, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	result := config.ValidateConfig(cfg)
	for _, w := range result.Warnings {
		a.out.Warning("%s: %s", w.Field, w.Message)
	}
	for _, e := range result.Errors {
		a.out.Error("%s: %s", e.Field, e.Message)
	}
	if !result.Valid {
		return nil, errReported
	}

	if !cmd.Flags().Changed("log-level") && !a.verbose {
		if err := a.applyLogLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (a *app) reportRun(summary *converter.Summary) {
	for _, err := range summary.ScanErrors {
		a.out.Warning("%v", err)
	}
	for _, err := range summary.Errors {
		a.out.Error("Error converting: %v", err)
	}
	for _, r := range summary.Results {
		a.out.Verbose("%s -> %s: %s of %s lines converted", r.Source, r.Destination,
			humanize.Comma(int64(r.Converted)), humanize.Comma(int64(r.Lines)))
	}
	a.out.Info("%s", summary.String())
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert CONFIG",
		Short: "Convert every file of the configured source directories.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, args[0])
			if err != nil {
				return err
			}

			summary, err := converter.Run(cfg, a.out)
			if err != nil {
				return err
			}
			a.reportRun(summary)

			if summary.HasErrors() {
				return errReported
			}
			return nil
		},
	}
}

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch CONFIG",
		Short: "Convert existing files, then convert new and changed files until interrupted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd, args[0])
			if err != nil {
				return err
			}

			summary, err := converter.Run(cfg, a.out)
			if err != nil {
				return err
			}
			a.reportRun(summary)

			c, err := converter.New(cfg)
			if err != nil {
				return err
			}

			w := watcher.New(watcher.FromConfig(cfg.Watch), func(path string) (bool, error) {
				result, err := c.ConvertFile(path)
				if err != nil {
					return false, err
				}
				a.out.Verbose("%s -> %s: %s of %s lines converted", result.Source, result.Destination,
					humanize.Comma(int64(result.Converted)), humanize.Comma(int64(result.Lines)))
				return result.Converted > 0, nil
			})
			if err := w.Start(cfg.SourceDirectories); err != nil {
				return err
			}
			a.out.Info("Watching %d directories, press Ctrl+C to stop", len(cfg.SourceDirectories))

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			signal.Stop(sig)

			ws := w.Stop()
			a.out.Info("Watched for %s: %s converted, %s skipped, %s failed",
				ws.Duration.Round(time.Second),
				humanize.Comma(int64(ws.FilesConverted)),
				humanize.Comma(int64(ws.FilesSkipped)),
				humanize.Comma(int64(ws.FilesFailed)))
			return nil
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate CONFIG",
		Short: "Check a configuration file without converting anything.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.loadConfig(cmd, args[0]); err != nil {
				return err
			}
			a.out.Info("Configuration is valid")
			return nil
		},
	}
}
