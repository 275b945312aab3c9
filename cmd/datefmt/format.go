package main

import (
	"time"

	"github.com/spf13/cobra"

	"datefmt/internal/strtime"
)

func (a *app) formatCmd() *cobra.Command {
	var (
		at   string
		unix int64
		utc  bool
	)

	cmd := &cobra.Command{
		Use:   "format FORMAT",
		Short: "Print a date formatted with FORMAT (now by default).",
		Example: `  datefmt format "%l, %F %j%S %Y"
  datefmt format "%d/%m/%Y %H:%i" --at 2009-06-05T09:25:22Z`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now()
			switch {
			case cmd.Flags().Changed("at"):
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return err
				}
				t = parsed
			case cmd.Flags().Changed("unix"):
				t = time.Unix(unix, 0)
			}
			if utc {
				t = t.UTC()
			}

			a.out.Info("%s", strtime.Strftime(t, args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "RFC 3339 date to format; its own offset gives the wall clock")
	cmd.Flags().Int64Var(&unix, "unix", 0, "Unix seconds to format")
	cmd.Flags().BoolVar(&utc, "utc", false, "use the UTC wall clock instead of the local one")
	return cmd
}
