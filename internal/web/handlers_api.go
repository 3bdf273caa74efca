package web

import (
	"net/http"

	"github.com/JonMunkholm/catalogo/internal/core"
	"github.com/go-chi/chi/v5"
)

// catalogInfo is the JSON view of a registered catalog.
type catalogInfo struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Action    string `json:"action"`
	SheetID   string `json:"sheetId"`
	SheetName string `json:"sheetName,omitempty"`
}

// columnsInfo is the JSON view of core.Columns.
type columnsInfo struct {
	Name  string `json:"name"`
	Lab   string `json:"lab,omitempty"`
	Price string `json:"price,omitempty"`
}

func toColumnsInfo(c core.Columns) columnsInfo {
	return columnsInfo{Name: c.Name, Lab: c.Lab, Price: c.Price}
}

// catalogResponse is a freshly fetched table plus its detected columns.
type catalogResponse struct {
	Key string `json:"key"`
	*core.Table
	Columns columnsInfo `json:"columns"`
}

// cartResponse is the session's cart for one catalog.
type cartResponse struct {
	Catalog string            `json:"catalog"`
	Items   []core.CartItem   `json:"items"`
	Summary core.OrderSummary `json:"summary"`
	Total   string            `json:"totalFormatted"`
}

// handleListCatalogs returns the registered catalogs in dashboard order.
func (s *Server) handleListCatalogs(w http.ResponseWriter, r *http.Request) {
	defs := core.All()
	out := make([]catalogInfo, len(defs))
	for i, d := range defs {
		out[i] = catalogInfo{
			Key:       d.Key,
			Title:     d.Title,
			Subtitle:  d.Subtitle,
			Action:    d.Action,
			SheetID:   d.Sheet.SheetID,
			SheetName: d.Sheet.SheetName,
		}
	}
	writeJSON(w, out)
}

// handleFetchCatalog fetches a catalog's sheet without touching any session.
func (s *Server) handleFetchCatalog(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	table, err := s.service.FetchCatalog(r.Context(), key)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	writeJSON(w, catalogResponse{
		Key:     key,
		Table:   table,
		Columns: toColumnsInfo(core.ClassifyColumns(table)),
	})
}

// handleCart returns the session's cart. A catalog the session is not
// looking at has an empty cart.
func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if _, ok := core.Get(key); !ok {
		s.respondError(w, r, core.ErrCatalogNotFound, http.StatusNotFound)
		return
	}

	resp := cartResponse{Catalog: key, Items: []core.CartItem{}}
	sess := sessionFrom(r)
	if sess.View() == key {
		resp.Items = sess.CartItems()
		resp.Summary = s.service.Summary(sess)
	} else {
		resp.Summary = core.Summarize(nil, nil)
	}
	if resp.Summary.HasPrice {
		resp.Total = core.FormatCurrency(resp.Summary.Total)
	}
	writeJSON(w, resp)
}

// handleRecentOrders returns the order log, newest first.
func (s *Server) handleRecentOrders(w http.ResponseWriter, r *http.Request) {
	limit := min(parseIntParam(r, "limit", core.DefaultOrderHistoryLimit), maxOrderHistory)

	orders, err := s.service.RecentOrders(r.Context(), limit)
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []core.OrderRecord{}
	}
	writeJSON(w, orders)
}
