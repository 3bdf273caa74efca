package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/JonMunkholm/catalogo/internal/core"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered catalogs and the sheets they read.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(); err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tTITLE\tSHEET ID\tTAB")
			for _, def := range core.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", def.Key, def.Title, def.Sheet.SheetID, orDash(def.Sheet.SheetName))
			}
			return tw.Flush()
		},
	}
	return cmd
}
