package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"datefmt/internal/tokens"
)

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [CODE...]",
		Short: "List the supported %-codes.",
		Long: `List the supported %-codes grouped by category, or describe only the
given codes. A code may be written with or without its leading %.`,
		Example: "  datefmt tokens\n  datefmt tokens Y %i",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := tokens.All()
			if len(args) > 0 {
				var err error
				if infos, err = a.lookupCodes(args); err != nil {
					return err
				}
			}

			var b strings.Builder
			w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)

			var category tokens.Category
			for _, info := range infos {
				if info.Category != category {
					if category != "" {
						fmt.Fprintln(w)
					}
					category = info.Category
					fmt.Fprintf(w, "%s\n", category)
				}
				mode := "format"
				if info.Parse {
					mode = "format, parse"
				}
				fmt.Fprintf(w, "  %%%c\t%s\t%s\n", info.Code, mode, info.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			a.out.Info("%s", b.String())
			return nil
		},
	}
}

// lookupCodes resolves the codes named on the command line in the order given.
func (a *app) lookupCodes(args []string) ([]tokens.Info, error) {
	infos := make([]tokens.Info, 0, len(args))
	failed := false
	for _, arg := range args {
		code := strings.TrimPrefix(arg, "%")
		if len(code) == 1 {
			if info, ok := tokens.Lookup(tokens.Code(code[0])); ok {
				infos = append(infos, info)
				continue
			}
		}
		a.out.Error("unknown code %q", arg)
		failed = true
	}
	if failed {
		return nil, errReported
	}
	return infos, nil
}
