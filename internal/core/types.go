package core

import (
	"context"
	"time"
)

// NoColumn marks a column lookup that found no matching header.
const NoColumn = -1

// Table is one parsed spreadsheet payload.
// A Table is built fresh on every fetch and never merged with a previous one.
type Table struct {
	Headers          []string `json:"headers"`
	Rows             []Row    `json:"rows"`
	PriceColumnIndex int      `json:"priceColumnIndex"` // NoColumn if not found
}

// Row is a single non-blank data line of a Table.
type Row struct {
	ID            string            `json:"id"`   // "row-<line>", stable for one fetch only
	Data          map[string]string `json:"data"` // header -> trimmed cell
	OriginalIndex int               `json:"originalIndex"`
}

// PriceHeader returns the header of the price column, or "" if there is none.
func (t *Table) PriceHeader() string {
	if t == nil || t.PriceColumnIndex < 0 || t.PriceColumnIndex >= len(t.Headers) {
		return ""
	}
	return t.Headers[t.PriceColumnIndex]
}

// HasPrice reports whether a price column was detected.
func (t *Table) HasPrice() bool {
	return t != nil && t.PriceColumnIndex != NoColumn
}

// FindRow returns the row with the given ID.
func (t *Table) FindRow(id string) (Row, bool) {
	if t == nil {
		return Row{}, false
	}
	for _, r := range t.Rows {
		if r.ID == id {
			return r, true
		}
	}
	return Row{}, false
}

// SheetRef identifies a spreadsheet and, optionally, one named tab in it.
// An empty SheetName selects the spreadsheet's default (first) tab.
type SheetRef struct {
	SheetID   string `json:"sheetId"`
	SheetName string `json:"sheetName,omitempty"`
}

// SheetSource fetches and parses a spreadsheet.
type SheetSource interface {
	Fetch(ctx context.Context, ref SheetRef) (*Table, error)
}

// CatalogDefinition describes one browsable catalog backed by a spreadsheet.
type CatalogDefinition struct {
	Key      string   // URL key: "medicamentos"
	Title    string   // Display name: "Medicamentos"
	Subtitle string   // Card tagline
	Action   string   // Card call to action: "Ver Tabela"
	Sheet    SheetRef // Where the rows come from
	Order    int      // Position on the dashboard
}

// ContactCard is a dashboard shortcut that opens a chat with a canned message.
type ContactCard struct {
	Key      string
	Title    string
	Subtitle string
	Message  string
	Order    int
}

// Destination is a messaging recipient an order can be handed off to.
type Destination struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Number string `json:"number"`
}

// CartItem is a selected row together with its quantity.
type CartItem struct {
	Row
	Quantity int `json:"quantity"`
}

// OrderLine is one item of an order summary.
type OrderLine struct {
	Name      string  `json:"name"`
	Lab       string  `json:"lab,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderSummary holds everything needed to render a cart or an order message.
type OrderSummary struct {
	Lines      []OrderLine `json:"lines"`
	TotalItems int         `json:"totalItems"`
	Total      float64     `json:"total"`
	HasPrice   bool        `json:"hasPrice"`
	HasLab     bool        `json:"hasLab"`
}

// OrderRecord is a hand-off written to the order log.
type OrderRecord struct {
	ID          string      `json:"id"`
	CatalogKey  string      `json:"catalogKey"`
	Destination string      `json:"destination,omitempty"`
	Lines       []OrderLine `json:"lines"`
	TotalItems  int         `json:"totalItems"`
	Total       float64     `json:"total"`
	HasPrice    bool        `json:"hasPrice"`
	IPAddress   string      `json:"ipAddress,omitempty"`
	UserAgent   string      `json:"userAgent,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}
