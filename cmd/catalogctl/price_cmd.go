package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/JonMunkholm/catalogo/internal/core"
	"github.com/spf13/cobra"
)

func priceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price VALUE...",
		Short: "Show how price cells are normalized and displayed.",
		Example: `  catalogctl price "R$ 1.234,56" "12,50" "sob consulta"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INPUT\tVALUE\tDISPLAY")
			for _, arg := range args {
				v := core.ParseCurrency(arg)
				fmt.Fprintf(tw, "%q\t%.2f\t%s\n", arg, v, core.FormatCurrency(v))
			}
			return tw.Flush()
		},
	}
	return cmd
}
