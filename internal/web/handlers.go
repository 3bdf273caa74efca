package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/JonMunkholm/catalogo/internal/core"
	"github.com/JonMunkholm/catalogo/internal/logging"
	"github.com/JonMunkholm/catalogo/internal/web/templates"
	"github.com/go-chi/chi/v5"
)

// handleDashboard renders the home page with catalog and contact cards.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	templates.Dashboard(templates.DashboardParams{
		Catalogs: core.All(),
		Contacts: core.Contacts(),
		GroupURL: s.cfg.Contacts.GroupURL,
	}).Render(r.Context(), w)
}

// handleBackToDashboard leaves the current catalog. The cart is kept.
func (s *Server) handleBackToDashboard(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).BackToDashboard()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleContact redirects to a quick-contact chat link.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	link, err := s.service.ContactURL(chi.URLParam(r, "key"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	http.Redirect(w, r, link, http.StatusFound)
}

// handleCatalog opens a catalog, loading its sheet on the first visit.
// A failed load still renders the page, with the error panel.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if err := s.service.OpenCatalog(r.Context(), sess, chi.URLParam(r, "key")); err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	s.renderCatalog(w, r, sess)
}

// handleRefresh reloads the catalog's sheet, replacing the current table.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	key := chi.URLParam(r, "key")

	if sess.View() != key {
		if err := s.service.OpenCatalog(r.Context(), sess, key); err != nil {
			s.respondError(w, r, err, statusFor(err))
			return
		}
	} else {
		// The outcome, including any error, is kept on the session.
		_ = s.service.Load(r.Context(), sess)
	}
	s.afterMutation(w, r, sess, key)
}

// handleToggle selects or deselects a row.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	key := chi.URLParam(r, "key")
	rowID := chi.URLParam(r, "rowID")

	if !s.requireView(w, r, sess, key) {
		return
	}
	selected, err := s.service.ToggleRow(sess, rowID)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	logging.FromContext(r.Context()).Debug("row toggled", "catalog", key, "row", rowID, "selected", selected)
	s.afterMutation(w, r, sess, key)
}

// handleQuantity changes a selected row's quantity. The form carries either
// op=inc|dec or qty=n. Invalid or out of range values leave it unchanged.
func (s *Server) handleQuantity(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	key := chi.URLParam(r, "key")
	rowID := chi.URLParam(r, "rowID")

	if !s.requireView(w, r, sess, key) {
		return
	}

	var err error
	switch r.FormValue("op") {
	case "inc":
		_, err = s.service.AdjustQuantity(sess, rowID, 1)
	case "dec":
		_, err = s.service.AdjustQuantity(sess, rowID, -1)
	default:
		if qty, convErr := strconv.Atoi(r.FormValue("qty")); convErr == nil {
			_, err = s.service.SetQuantity(sess, rowID, qty)
		}
	}
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}
	s.afterMutation(w, r, sess, key)
}

// handleOrder hands the cart off to the chosen destination by redirecting
// to the chat deep link.
func (s *Server) handleOrder(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	key := chi.URLParam(r, "key")

	if sess.View() != key {
		s.respondError(w, r, core.ErrEmptyCart, http.StatusBadRequest)
		return
	}

	ctx := WithRequestMetadata(r.Context(), r)
	link, err := s.service.PlaceOrder(ctx, sess, r.FormValue("to"))
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	// The order form is a plain post into a new tab, never an htmx swap.
	http.Redirect(w, r, link, http.StatusSeeOther)
}

// requireView rejects row operations for a catalog the session is not
// looking at; its row IDs are not in the session's table.
func (s *Server) requireView(w http.ResponseWriter, r *http.Request, sess *core.Session, key string) bool {
	if sess.View() == key {
		return true
	}
	if _, ok := core.Get(key); !ok {
		s.respondError(w, r, core.ErrCatalogNotFound, http.StatusNotFound)
		return false
	}
	s.respondError(w, r, core.ErrRowNotFound, http.StatusConflict)
	return false
}

// afterMutation answers a form post: htmx gets the fresh partial, a plain
// browser is redirected back to the list (post/redirect/get).
func (s *Server) afterMutation(w http.ResponseWriter, r *http.Request, sess *core.Session, key string) {
	if isHTMX(r) {
		s.renderCatalog(w, r, sess)
		return
	}
	http.Redirect(w, r, "/catalog/"+url.PathEscape(key), http.StatusSeeOther)
}

// renderCatalog renders the session's current catalog.
func (s *Server) renderCatalog(w http.ResponseWriter, r *http.Request, sess *core.Session) {
	st := sess.Snapshot()
	params := templates.CatalogParams{
		State:         st,
		Columns:       core.ClassifyColumns(st.Table),
		Summary:       core.Summarize(st.Items, st.Table),
		Destinations:  s.service.Destinations(),
		Location:      s.service.Location(),
		HTMXScriptURL: s.cfg.UI.HTMXScriptURL,
	}
	if st.Err != nil {
		msg := core.MapError(st.Err)
		params.Error = &msg
	}

	if isHTMX(r) {
		templates.CatalogPartial(params).Render(r.Context(), w)
		return
	}
	templates.CatalogPage(params).Render(r.Context(), w)
}

// handleHealthz reports liveness with session and download counters.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"status":   "ok",
		"sessions": s.service.Sessions().Len(),
		"catalogs": core.Count(),
	}
	if status, ok := s.service.FetchStatus(); ok {
		resp["fetches"] = status
	}
	writeJSON(w, resp)
}
