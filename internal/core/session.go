package core

// session.go holds the per-browser state of the catalog front-end: which
// view is open, the last fetched Table and the cart.
//
// Loads are tagged with a monotonically increasing generation. Only the
// completion of the most recent load is applied, so a slow early fetch can
// never overwrite the result of a later one.

import (
	"sync"
	"time"
)

// ViewDashboard is the landing view; any other view is a catalog key.
const ViewDashboard = "dashboard"

// Session is the state of one browser session. Safe for concurrent use.
type Session struct {
	ID string

	mu          sync.Mutex
	view        string
	catalog     CatalogDefinition
	table       *Table
	lastUpdated time.Time
	loadErr     error
	loading     bool
	generation  uint64
	cart        cart
	lastSeen    time.Time
}

// SessionState is a read-only snapshot of a Session for rendering.
type SessionState struct {
	View        string
	Catalog     CatalogDefinition
	Table       *Table
	LastUpdated time.Time
	Err         error
	Loading     bool
	Quantities  map[string]int
	Items       []CartItem
}

// Selected reports whether rowID is in the cart.
func (st SessionState) Selected(rowID string) bool {
	_, ok := st.Quantities[rowID]
	return ok
}

// Quantity returns the cart quantity for rowID, or 1 for unselected rows.
func (st SessionState) Quantity(rowID string) int {
	if q, ok := st.Quantities[rowID]; ok {
		return q
	}
	return 1
}

// NewSession creates a session showing the dashboard.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		view:     ViewDashboard,
		cart:     newCart(),
		lastSeen: now,
	}
}

// View returns the current view.
func (s *Session) View() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SelectCatalog switches to a catalog view. The cart is emptied and any
// previously loaded table is dropped.
func (s *Session) SelectCatalog(def CatalogDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = def.Key
	s.catalog = def
	s.resetLoadLocked()
	s.cart = newCart()
}

// BackToDashboard returns to the dashboard and drops the loaded table.
// The cart is left as is; selecting a catalog clears it.
func (s *Session) BackToDashboard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.view = ViewDashboard
	s.resetLoadLocked()
}

// resetLoadLocked drops the loaded table and orphans any load in flight.
func (s *Session) resetLoadLocked() {
	s.generation++
	s.loading = false
	s.table = nil
	s.loadErr = nil
}

// NeedsLoad reports whether a catalog view is open with neither data nor
// an error to show.
func (s *Session) NeedsLoad() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view != ViewDashboard && s.table == nil && s.loadErr == nil && !s.loading
}

// BeginLoad marks a load as started and returns its generation.
func (s *Session) BeginLoad() (uint64, SheetRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.loading = true
	s.loadErr = nil
	return s.generation, s.catalog.Sheet
}

// CompleteLoad applies the outcome of load gen. It returns false, and
// changes nothing, if a newer load has started since.
func (s *Session) CompleteLoad(gen uint64, table *Table, err error, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}

	s.loading = false
	if err != nil {
		s.loadErr = err
		return true
	}
	s.table = table
	s.loadErr = nil
	s.lastUpdated = now
	return true
}

// AbandonLoad ends load gen without recording an outcome, leaving the view
// eligible for a fresh load. Used when the caller gave up on the fetch.
func (s *Session) AbandonLoad(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.loading = false
	return true
}

// ToggleSelect adds rowID to the cart with quantity 1, or removes it if
// already present. Returns whether the row is selected afterwards.
func (s *Session) ToggleSelect(rowID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.has(rowID) {
		s.cart.remove(rowID)
		return false
	}
	s.cart.set(rowID, 1)
	return true
}

// UpdateQuantity sets the quantity of a selected row.
// Unselected rows and quantities below 1 are ignored.
func (s *Session) UpdateQuantity(rowID string, qty int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty < 1 || !s.cart.has(rowID) {
		return false
	}
	s.cart.set(rowID, qty)
	return true
}

// AdjustQuantity adds delta to the quantity of a selected row in one step.
// Unselected rows and results below 1 are ignored.
func (s *Session) AdjustQuantity(rowID string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.cart.qty[rowID]
	if !ok || q+delta < 1 {
		return false
	}
	s.cart.set(rowID, q+delta)
	return true
}

// CartItems returns the selected rows of the current table in selection
// order. Selections whose row no longer exists are skipped.
func (s *Session) CartItems() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartItemsLocked()
}

func (s *Session) cartItemsLocked() []CartItem {
	if s.table == nil {
		return nil
	}

	byID := make(map[string]Row, len(s.table.Rows))
	for _, r := range s.table.Rows {
		byID[r.ID] = r
	}

	items := make([]CartItem, 0, len(s.cart.order))
	for _, id := range s.cart.order {
		row, ok := byID[id]
		if !ok {
			continue
		}
		items = append(items, CartItem{Row: row, Quantity: s.cart.qty[id]})
	}
	return items
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	qty := make(map[string]int, len(s.cart.qty))
	for k, v := range s.cart.qty {
		qty[k] = v
	}

	return SessionState{
		View:        s.view,
		Catalog:     s.catalog,
		Table:       s.table,
		LastUpdated: s.lastUpdated,
		Err:         s.loadErr,
		Loading:     s.loading,
		Quantities:  qty,
		Items:       s.cartItemsLocked(),
	}
}

// Touch records activity on the session.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns the time of the last recorded activity.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// cart is an insertion-ordered mapping of row ID to quantity.
type cart struct {
	order []string
	qty   map[string]int
}

func newCart() cart {
	return cart{qty: make(map[string]int)}
}

func (c *cart) has(id string) bool {
	_, ok := c.qty[id]
	return ok
}

func (c *cart) set(id string, q int) {
	if !c.has(id) {
		c.order = append(c.order, id)
	}
	c.qty[id] = q
}

func (c *cart) remove(id string) {
	if !c.has(id) {
		return
	}
	delete(c.qty, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
