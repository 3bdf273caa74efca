package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultStoreName heads every order message.
const DefaultStoreName = "Estrela da Leste / Dr. VB"

// ServiceConfig holds the order hand-off settings of a Service.
type ServiceConfig struct {
	StoreName    string
	Destinations []Destination
	Location     *time.Location
}

// Service provides the core catalog operations on top of a sheet source,
// a session store and an order log.
type Service struct {
	source       SheetSource
	sessions     *SessionStore
	orders       OrderLog
	storeName    string
	destinations []Destination
	location     *time.Location
	now          func() time.Time
}

// NewService creates a new Service instance.
// A nil orders log falls back to an in-memory one.
func NewService(source SheetSource, sessions *SessionStore, orders OrderLog, cfg ServiceConfig) *Service {
	if orders == nil {
		orders = NewMemoryOrderLog(DefaultOrderHistoryLimit)
	}
	if cfg.StoreName == "" {
		cfg.StoreName = DefaultStoreName
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	return &Service{
		source:       source,
		sessions:     sessions,
		orders:       orders,
		storeName:    cfg.StoreName,
		destinations: cfg.Destinations,
		location:     cfg.Location,
		now:          time.Now,
	}
}

// Sessions returns the session store.
func (s *Service) Sessions() *SessionStore {
	return s.sessions
}

// Destinations returns the configured order destinations that have a number.
func (s *Service) Destinations() []Destination {
	out := make([]Destination, 0, len(s.destinations))
	for _, d := range s.destinations {
		if d.Number != "" {
			out = append(out, d)
		}
	}
	return out
}

// Location returns the time zone used for displayed timestamps.
func (s *Service) Location() *time.Location {
	return s.location
}

// FetchStatus reports the download slots of the sheet source. The bool is
// false when the source has no limiter.
func (s *Service) FetchStatus() (FetchLimiterStatus, bool) {
	if src, ok := s.source.(interface{ Limiter() *FetchLimiter }); ok && src.Limiter() != nil {
		return src.Limiter().Status(), true
	}
	return FetchLimiterStatus{}, false
}

// OpenCatalog makes key the session's current view and loads its sheet if
// nothing has been loaded yet. Switching from another view empties the cart.
// A failed fetch is recorded on the session, not returned.
func (s *Service) OpenCatalog(ctx context.Context, sess *Session, key string) error {
	def, ok := Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCatalogNotFound, key)
	}

	if sess.View() != key {
		sess.SelectCatalog(def)
	}
	if sess.NeedsLoad() {
		s.Load(ctx, sess)
	}
	return nil
}

// Load fetches the session's current catalog and applies the result.
// It returns the fetch error, which is also stored on the session.
func (s *Service) Load(ctx context.Context, sess *Session) error {
	if sess.View() == ViewDashboard {
		return nil
	}

	gen, ref := sess.BeginLoad()
	start := s.now()
	table, err := s.source.Fetch(ctx, ref)
	if err != nil && ctx.Err() != nil {
		// The caller went away; leave no error behind so the next visit
		// fetches again.
		sess.AbandonLoad(gen)
		slog.Debug("sheet load abandoned", "session", sess.ID, "sheet_id", ref.SheetID, "error", err)
		return err
	}
	applied := sess.CompleteLoad(gen, table, err, s.now())

	logger := slog.With(
		"session", sess.ID,
		"sheet_id", ref.SheetID,
		"sheet_name", ref.SheetName,
		"generation", gen,
		"duration_ms", s.now().Sub(start).Milliseconds(),
	)
	switch {
	case !applied:
		logger.Debug("discarded stale sheet load")
	case err != nil:
		logger.Warn("sheet load failed", "error", err)
	default:
		logger.Info("sheet loaded", "rows", len(table.Rows), "price_column", table.PriceColumnIndex)
	}

	return err
}

// FetchCatalog fetches a fresh table for a catalog without touching any session.
func (s *Service) FetchCatalog(ctx context.Context, key string) (*Table, error) {
	def, ok := Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, key)
	}
	return s.source.Fetch(ctx, def.Sheet)
}

// ToggleRow selects or deselects a row of the session's current table.
func (s *Service) ToggleRow(sess *Session, rowID string) (bool, error) {
	if err := requireRow(sess, rowID); err != nil {
		return false, err
	}
	return sess.ToggleSelect(rowID), nil
}

// SetQuantity updates the quantity of a selected row.
// Returns false if the row is not selected or qty is below 1.
func (s *Service) SetQuantity(sess *Session, rowID string, qty int) (bool, error) {
	if err := requireRow(sess, rowID); err != nil {
		return false, err
	}
	return sess.UpdateQuantity(rowID, qty), nil
}

// AdjustQuantity adds delta to a selected row's quantity, never going below 1.
func (s *Service) AdjustQuantity(sess *Session, rowID string, delta int) (bool, error) {
	if err := requireRow(sess, rowID); err != nil {
		return false, err
	}
	return sess.AdjustQuantity(rowID, delta), nil
}

func requireRow(sess *Session, rowID string) error {
	st := sess.Snapshot()
	if _, ok := st.Table.FindRow(rowID); !ok {
		return fmt.Errorf("%w: %s", ErrRowNotFound, rowID)
	}
	return nil
}

// Summary prices the session's cart.
func (s *Service) Summary(sess *Session) OrderSummary {
	st := sess.Snapshot()
	return Summarize(st.Items, st.Table)
}

// PlaceOrder builds the deep link handing the session's cart off to the
// destination with key destKey ("" for the generic share target) and
// records the hand-off in the order log.
func (s *Service) PlaceOrder(ctx context.Context, sess *Session, destKey string) (string, error) {
	st := sess.Snapshot()
	if len(st.Items) == 0 {
		return "", ErrEmptyCart
	}

	dest, err := ResolveDestination(s.destinations, destKey)
	if err != nil {
		return "", err
	}

	now := s.now()
	summary := Summarize(st.Items, st.Table)
	message := BuildOrderMessage(summary, s.storeName, now, s.location)
	link := WhatsAppURL(dest.Number, message)

	rec := OrderRecord{
		ID:          uuid.NewString(),
		CatalogKey:  st.Catalog.Key,
		Destination: dest.Key,
		Lines:       summary.Lines,
		TotalItems:  summary.TotalItems,
		Total:       summary.Total,
		HasPrice:    summary.HasPrice,
		IPAddress:   IPAddressFromContext(ctx),
		UserAgent:   UserAgentFromContext(ctx),
		CreatedAt:   now,
	}
	if err := s.orders.Record(ctx, rec); err != nil {
		slog.Warn("order log write failed", "order_id", rec.ID, "error", err)
	}

	slog.Info("order handed off",
		"order_id", rec.ID,
		"catalog", rec.CatalogKey,
		"destination", rec.Destination,
		"items", rec.TotalItems,
	)

	return link, nil
}

// ContactURL returns the deep link of a quick-contact card. Cards always go
// to the first configured destination.
func (s *Service) ContactURL(key string) (string, error) {
	card, ok := GetContact(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrCatalogNotFound, key)
	}
	var number string
	if dests := s.Destinations(); len(dests) > 0 {
		number = dests[0].Number
	}
	return WhatsAppURL(number, card.Message), nil
}

// RecentOrders returns up to limit logged hand-offs, newest first.
func (s *Service) RecentOrders(ctx context.Context, limit int) ([]OrderRecord, error) {
	return s.orders.Recent(ctx, limit)
}
