package web

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/JonMunkholm/catalogo/internal/core"
	"github.com/JonMunkholm/catalogo/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	catalogSheet    = "Catalogo"
	orderSheet      = "Pedido"
	currencyNumFmt  = `"R$" #,##0.00`
)

// handleExportXLSX downloads a catalog as a workbook. For the session's
// current view the loaded table and the cart are exported, loading first if
// needed. Any other catalog is fetched fresh and the session is left alone,
// so an export never switches views or empties the cart.
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	key := chi.URLParam(r, "key")

	table, items, err := s.exportTable(r, sess, key)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	filename := fmt.Sprintf("%s-%s.xlsx", key, time.Now().In(s.service.Location()).Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	summary := core.Summarize(items, table)
	if err := writeCatalogXLSX(w, table, summary); err != nil {
		logging.FromContext(r.Context()).Error("xlsx export failed", "catalog", key, "error", err)
	}
}

// exportTable returns the table and cart to export for key.
func (s *Server) exportTable(r *http.Request, sess *core.Session, key string) (*core.Table, []core.CartItem, error) {
	if sess.View() != key {
		table, err := s.service.FetchCatalog(r.Context(), key)
		return table, nil, err
	}

	if err := s.service.OpenCatalog(r.Context(), sess, key); err != nil {
		return nil, nil, err
	}
	st := sess.Snapshot()
	if st.Table == nil {
		if st.Err != nil {
			return nil, nil, st.Err
		}
		return nil, nil, core.ErrSheetUnavailable
	}
	return st.Table, st.Items, nil
}

// writeCatalogXLSX writes table to a "Catalogo" sheet with the price column
// as numbers, plus a "Pedido" sheet when summary has lines.
func writeCatalogXLSX(w io.Writer, table *core.Table, summary core.OrderSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", catalogSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	numFmt := currencyNumFmt
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return err
	}

	header := make([]any, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := writeRow(f, catalogSheet, 1, header, bold); err != nil {
		return err
	}

	for i, row := range table.Rows {
		values := make([]any, len(table.Headers))
		for c, h := range table.Headers {
			if c == table.PriceColumnIndex {
				values[c] = core.ParseCurrency(row.Data[h])
				continue
			}
			values[c] = row.Data[h]
		}
		if err := writeRow(f, catalogSheet, i+2, values, 0); err != nil {
			return err
		}
	}
	if table.HasPrice() && len(table.Rows) > 0 {
		col, err := excelize.ColumnNumberToName(table.PriceColumnIndex + 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(catalogSheet, col+"2", fmt.Sprintf("%s%d", col, len(table.Rows)+1), money); err != nil {
			return err
		}
	}

	if len(summary.Lines) > 0 {
		if err := writeOrderSheet(f, summary, bold, money); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// writeOrderSheet lists the cart lines and the total.
func writeOrderSheet(f *excelize.File, summary core.OrderSummary, bold, money int) error {
	if _, err := f.NewSheet(orderSheet); err != nil {
		return err
	}

	header := []any{"Item", "Qtd"}
	if summary.HasLab {
		header = append(header, "Lab")
	}
	if summary.HasPrice {
		header = append(header, "Preço unitário", "Subtotal")
	}
	if err := writeRow(f, orderSheet, 1, header, bold); err != nil {
		return err
	}

	for i, l := range summary.Lines {
		values := []any{l.Name, l.Quantity}
		if summary.HasLab {
			values = append(values, l.Lab)
		}
		if summary.HasPrice {
			values = append(values, l.UnitPrice, l.Subtotal)
		}
		if err := writeRow(f, orderSheet, i+2, values, 0); err != nil {
			return err
		}
	}

	totalRow := len(summary.Lines) + 2
	if !summary.HasPrice {
		return writeRow(f, orderSheet, totalRow, []any{"Total de Itens", summary.TotalItems}, bold)
	}

	// Price columns are the last two.
	first, _ := excelize.CoordinatesToCellName(len(header)-1, 2)
	last, _ := excelize.CoordinatesToCellName(len(header), totalRow)
	if err := f.SetCellStyle(orderSheet, first, last, money); err != nil {
		return err
	}
	totals := make([]any, len(header))
	totals[0] = "TOTAL DO PEDIDO"
	totals[1] = summary.TotalItems
	totals[len(header)-1] = summary.Total
	if err := writeRow(f, orderSheet, totalRow, totals, 0); err != nil {
		return err
	}
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	return f.SetCellStyle(orderSheet, cell, cell, bold)
}

// writeRow writes values starting at column A of row. A non-zero style is
// applied to the written cells. Nil values are skipped.
func writeRow(f *excelize.File, sheet string, row int, values []any, style int) error {
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
		if style != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}
