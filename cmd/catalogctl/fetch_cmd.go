package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/JonMunkholm/catalogo/internal/core"
	"github.com/JonMunkholm/catalogo/internal/core/catalogs"
	"github.com/spf13/cobra"
)

type fetchOptions struct {
	sheetID   string
	sheetName string
	baseURL   string
	timeout   time.Duration
	limit     int
	asJSON    bool
}

func fetchCmd() *cobra.Command {
	opts := &fetchOptions{}
	cmd := &cobra.Command{
		Use:   "fetch [CATALOG]",
		Short: "Download a sheet and print the parsed table with its detected columns.",
		Long: "Download a sheet and print the parsed table with its detected columns.\n" +
			"CATALOG selects a registered catalog; --sheet-id and --sheet-name override its sheet.",
		Example: strings.Join([]string{
			"  catalogctl fetch medicamentos",
			"  catalogctl fetch diversos --json",
			"  catalogctl fetch --sheet-id 1kEb... --sheet-name Ofertas",
		}, "\n"),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var ref core.SheetRef
			if len(args) == 1 {
				def, ok := core.Get(args[0])
				if !ok {
					return fmt.Errorf("%w: %s", core.ErrCatalogNotFound, args[0])
				}
				ref = def.Sheet
			}
			if opts.sheetID != "" {
				ref.SheetID = opts.sheetID
			}
			if opts.sheetName != "" {
				ref.SheetName = opts.sheetName
			}
			if ref.SheetID == "" {
				return fmt.Errorf("either CATALOG or --sheet-id is required")
			}

			srcCfg := catalogs.SourceConfig(cfg.Sheets)
			if opts.baseURL != "" {
				srcCfg.BaseURL = opts.baseURL
			}
			if cmd.Flags().Changed("timeout") {
				srcCfg.Timeout = opts.timeout
			}

			table, err := core.NewHTTPSheetSource(srcCfg).Fetch(cmd.Context(), ref)
			if err != nil {
				return fmt.Errorf("%s: %w", core.FormatUserError(err), err)
			}

			if opts.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(table)
			}
			return printTable(cmd.OutOrStdout(), table, opts.limit)
		},
	}
	cmd.Flags().StringVar(&opts.sheetID, "sheet-id", "", "spreadsheet ID, overriding the catalog's")
	cmd.Flags().StringVar(&opts.sheetName, "sheet-name", "", "tab name, overriding the catalog's")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "spreadsheet document root (default from SHEET_BASE_URL)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "download timeout, 0 for none (default from SHEET_FETCH_TIMEOUT)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "print at most this many rows (0 for all)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the table as JSON")
	return cmd
}

// printTable writes the detected columns, then the rows aligned in columns.
func printTable(w io.Writer, t *core.Table, limit int) error {
	cols := core.ClassifyColumns(t)
	fmt.Fprintf(w, "rows: %d\n", len(t.Rows))
	fmt.Fprintf(w, "name column: %s\n", orDash(cols.Name))
	fmt.Fprintf(w, "lab column: %s\n", orDash(cols.Lab))
	fmt.Fprintf(w, "price column: %s (index %d)\n\n", orDash(cols.Price), t.PriceColumnIndex)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t"+strings.Join(t.Headers, "\t"))
	for i, row := range t.Rows {
		if limit > 0 && i >= limit {
			break
		}
		cells := make([]string, len(t.Headers))
		for c, h := range t.Headers {
			cells[c] = row.Data[h]
		}
		fmt.Fprintln(tw, row.ID+"\t"+strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
