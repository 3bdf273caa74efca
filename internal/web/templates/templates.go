// Package templates holds the HTML views of the storefront as templ
// components. The *_templ.go files are generated from the .templ sources
// with `templ generate` and checked in.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.960 generate

import (
	"net/url"
	"strconv"
	"time"

	"github.com/JonMunkholm/catalogo/internal/core"
)

// CatalogTarget is the element every catalog form swaps.
const CatalogTarget = "#catalog"

// AlertsTarget receives error fragments for requests made by htmx.
const AlertsTarget = "#catalog-alerts"

// htmxConfig lets error responses swap their alert fragment; htmx drops
// 4xx and 5xx bodies by default.
const htmxConfig = `{"includeIndicatorStyles":false,"responseHandling":[{"code":"204","swap":false},{"code":"[2345]..","swap":true}]}`

// DashboardParams holds the data for the home page.
type DashboardParams struct {
	Catalogs []core.CatalogDefinition
	Contacts []core.ContactCard
	GroupURL string
}

// CatalogParams holds the data for a catalog list view.
type CatalogParams struct {
	State         core.SessionState
	Columns       core.Columns
	Summary       core.OrderSummary
	Destinations  []core.Destination
	Error         *core.UserMessage // set when the last load failed
	Location      *time.Location
	HTMXScriptURL string
}

// catalogPath builds /catalog/{key}/{parts...} with escaped segments.
func catalogPath(key string, parts ...string) string {
	p := "/catalog/" + url.PathEscape(key)
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

func contactPath(key string) string {
	return "/contact/" + url.PathEscape(key)
}

func updatedAt(st core.SessionState, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return st.LastUpdated.In(loc).Format("15:04:05")
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " itens"
}

func cartTotal(s core.OrderSummary) string {
	if !s.HasPrice {
		return "Sob Consulta"
	}
	return core.FormatCurrency(s.Total)
}

func lineSubtotal(l core.OrderLine) string {
	if l.UnitPrice <= 0 {
		return "-"
	}
	return core.FormatCurrency(l.Subtotal)
}

func showLab(lab string) bool {
	return lab != "" && lab != "-"
}

// Unselected rows show quantity 1 with every control disabled; dec also
// stops at 1.
func decDisabled(qty int, selected bool) bool {
	return !selected || qty <= 1
}
