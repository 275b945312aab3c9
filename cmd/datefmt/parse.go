package main

import (
	"bufio"

	"github.com/spf13/cobra"

	"datefmt/internal/strtime"
)

const defaultParseOutput = "%Y-%m-%d %H:%i:%s"

func (a *app) parseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse FORMAT [INPUT...]",
		Short: "Parse inputs (or stdin lines) with FORMAT and print the dates found.",
		Example: `  datefmt parse "%m/%d/%Y" 06/05/2009
  cat dates.txt | datefmt parse "%d %F %Y" --output-format "%Y-%m-%d"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := args[0]
			failed := false

			handle := func(input string) {
				result, ok := strtime.Convert(input, format, outputFormat)
				if !ok {
					a.out.Error("no date found in %q", input)
					failed = true
					return
				}
				a.out.Info("%s", result)
			}

			if len(args) > 1 {
				for _, input := range args[1:] {
					handle(input)
				}
			} else {
				scanner := bufio.NewScanner(a.stdin)
				a.out.Prompt("> ")
				for scanner.Scan() {
					handle(scanner.Text())
					a.out.Prompt("> ")
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			if failed {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output-format", "o", defaultParseOutput, "format used to print parsed dates")
	return cmd
}
