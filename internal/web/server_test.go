package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JonMunkholm/catalogo/internal/config"
	"github.com/JonMunkholm/catalogo/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const (
	medPayload = "Medicamento,Laboratório,Preço\nDipirona,EMS,\"R$ 10,50\"\nSoro,,\"2,00\"\n"
	divPayload = "Produto,Observação\nLuvas,caixa\n"
	adminKey   = "test-admin-key"

	testHTMXURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
)

// testEnv is a running storefront backed by a fake spreadsheet host.
type testEnv struct {
	server *Server
	http   *httptest.Server
	client *http.Client

	mu     sync.Mutex
	sheets map[string]int // sheet path -> status override
}

func (e *testEnv) failSheet(path string, status int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if status == 0 {
		delete(e.sheets, path)
		return
	}
	e.sheets[path] = status
}

func (e *testEnv) sheetStatus(path string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	status, ok := e.sheets[path]
	return status, ok
}

func testConfig() *config.Config {
	return &config.Config{
		Contacts: config.ContactsConfig{
			StoreName: "Loja Teste",
			Number1:   "5511988517364",
			Label1:    "Loja",
			GroupURL:  "https://chat.whatsapp.com/test",
		},
		Session: config.SessionConfig{
			CookieName: "catalogo_session",
			TTL:        time.Hour,
		},
		Security: config.SecurityConfig{
			EnableCSP:    true,
			AdminAPIKeys: []string{adminKey},
		},
		UI: config.UIConfig{HTMXScriptURL: testHTMXURL},
	}
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	env := &testEnv{sheets: map[string]int{}}
	sheetHost := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status, ok := env.sheetStatus(r.URL.Path); ok {
			w.WriteHeader(status)
			return
		}
		switch r.URL.Path {
		case "/sheet-med/export":
			io.WriteString(w, medPayload)
		case "/sheet-div/gviz/tq":
			io.WriteString(w, divPayload)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(sheetHost.Close)

	core.Clear()
	core.Register(core.CatalogDefinition{Key: "medicamentos", Title: "Medicamentos", Sheet: core.SheetRef{SheetID: "sheet-med"}})
	core.Register(core.CatalogDefinition{Key: "diversos", Title: "Produtos Diversos", Sheet: core.SheetRef{SheetID: "sheet-div", SheetName: "Diversos"}, Order: 1})
	core.RegisterContact(core.ContactCard{Key: "entrega", Title: "Entrega", Message: "Olá"})
	t.Cleanup(core.Clear)

	source := core.NewHTTPSheetSource(core.SourceConfig{BaseURL: sheetHost.URL})
	service := core.NewService(source, core.NewSessionStore(), core.NewMemoryOrderLog(10), core.ServiceConfig{
		StoreName:    cfg.Contacts.StoreName,
		Destinations: []core.Destination{{Key: "primary", Label: cfg.Contacts.Label1, Number: cfg.Contacts.Number1}},
		Location:     time.UTC,
	})

	env.server = NewServer(service, cfg)
	env.http = httptest.NewServer(env.server.Router())
	t.Cleanup(func() {
		env.http.Close()
		env.server.Shutdown(context.Background())
	})

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	env.client = &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, form url.Values, header http.Header) (*http.Response, string) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequest(method, e.http.URL+path, body)
	require.NoError(t, err)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func (e *testEnv) get(t *testing.T, path string) (*http.Response, string) {
	return e.do(t, http.MethodGet, path, nil, nil)
}

func (e *testEnv) post(t *testing.T, path string, form url.Values) (*http.Response, string) {
	if form == nil {
		form = url.Values{}
	}
	return e.do(t, http.MethodPost, path, form, nil)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t, testConfig())

	resp, body := env.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Medicamentos")
	assert.Contains(t, body, "Produtos Diversos")
	assert.Contains(t, body, "/contact/entrega")
	assert.Contains(t, body, "https://chat.whatsapp.com/test")

	session := sessionCookie(resp)
	require.NotNil(t, session, "first visit sets the session cookie")
	assert.True(t, session.HttpOnly)
	assert.Equal(t, 3600, session.MaxAge)

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "form-action 'self' https://wa.me")

	// Later requests keep the same session and push its expiry forward.
	resp, _ = env.get(t, "/")
	renewed := sessionCookie(resp)
	require.NotNil(t, renewed, "every response renews the session cookie")
	assert.Equal(t, session.Value, renewed.Value)
	assert.Equal(t, 3600, renewed.MaxAge)
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "catalogo_session" {
			return c
		}
	}
	return nil
}

func TestSessionCookieRenewedOnActivity(t *testing.T) {
	env := newTestEnv(t, testConfig())
	resp, _ := env.get(t, "/catalog/medicamentos")
	first := sessionCookie(resp)
	require.NotNil(t, first)

	for _, path := range []string{"/catalog/medicamentos/toggle/row-1", "/catalog/medicamentos/refresh"} {
		resp, _ = env.post(t, path, nil)
		c := sessionCookie(resp)
		require.NotNil(t, c, path)
		assert.Equal(t, first.Value, c.Value, path)
		assert.Equal(t, 3600, c.MaxAge, path)
	}
}

func TestCatalogOrderFlow(t *testing.T) {
	env := newTestEnv(t, testConfig())

	resp, body := env.get(t, "/catalog/medicamentos")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Dipirona")
	assert.Contains(t, body, "R$ 10,50")

	resp, _ = env.post(t, "/catalog/medicamentos/toggle/row-1", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/catalog/medicamentos", resp.Header.Get("Location"))

	resp, _ = env.post(t, "/catalog/medicamentos/quantity/row-1", url.Values{"op": {"inc"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	// Invalid input is ignored.
	resp, _ = env.post(t, "/catalog/medicamentos/quantity/row-1", url.Values{"qty": {"abc"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, body = env.get(t, "/api/catalog/medicamentos/cart")
	var cart struct {
		Items   []core.CartItem   `json:"items"`
		Summary core.OrderSummary `json:"summary"`
		Total   string            `json:"totalFormatted"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Summary.TotalItems)
	assert.Equal(t, "R$ 21,00", cart.Total)

	_, body = env.get(t, "/catalog/medicamentos")
	assert.Contains(t, body, "Resumo")
	assert.Contains(t, body, "R$ 21,00")

	resp, _ = env.post(t, "/catalog/medicamentos/order", url.Values{"to": {"primary"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	link := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(link, "https://wa.me/5511988517364?text="), link)
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Contains(t, u.Query().Get("text"), "💲 *TOTAL DO PEDIDO: R$ 21,00*")

	resp, body = env.do(t, http.MethodGet, "/api/orders", nil, http.Header{"X-Api-Key": {adminKey}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []core.OrderRecord
	require.NoError(t, json.Unmarshal([]byte(body), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "medicamentos", orders[0].CatalogKey)
	assert.Equal(t, "primary", orders[0].Destination)
	assert.Equal(t, "127.0.0.1", orders[0].IPAddress)
}

func TestCatalogPageWiresHTMX(t *testing.T) {
	env := newTestEnv(t, testConfig())

	resp, body := env.get(t, "/catalog/medicamentos")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<script src="`+testHTMXURL+`" defer></script>`)
	assert.Contains(t, body, `name="htmx-config"`)
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "script-src 'self' https://unpkg.com;")

	for _, action := range []string{
		"/catalog/medicamentos/refresh",
		"/catalog/medicamentos/toggle/row-1",
		"/catalog/medicamentos/quantity/row-1",
	} {
		assert.Contains(t, body, `hx-post="`+action+`" hx-target="#catalog" hx-swap="outerHTML"`, action)
	}
	assert.Contains(t, body, `id="catalog-alerts"`)

	// The dashboard has no swappable forms and loads no script.
	_, body = env.get(t, "/")
	assert.NotContains(t, body, "<script")
}

func TestCatalogPageWithoutHTMX(t *testing.T) {
	cfg := testConfig()
	cfg.UI.HTMXScriptURL = ""
	env := newTestEnv(t, cfg)

	resp, body := env.get(t, "/catalog/medicamentos")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, body, "<script")
	assert.Contains(t, resp.Header.Get("Content-Security-Policy"), "script-src 'self';")
}

func TestCatalogHTMX(t *testing.T) {
	env := newTestEnv(t, testConfig())
	env.get(t, "/catalog/medicamentos")

	htmx := http.Header{"Hx-Request": {"true"}}
	resp, body := env.do(t, http.MethodPost, "/catalog/medicamentos/toggle/row-2", url.Values{}, htmx)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(body, `<div id="catalog"`), body)
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, "Resumo Detalhado")

	resp, body = env.do(t, http.MethodPost, "/catalog/medicamentos/quantity/row-2", url.Values{"op": {"inc"}}, htmx)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `name="qty" min="1" value="2"`)

	// Errors land in the alert slot rather than replacing the list.
	resp, body = env.do(t, http.MethodPost, "/catalog/medicamentos/toggle/row-99", url.Values{}, htmx)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "#catalog-alerts", resp.Header.Get("HX-Retarget"))
	assert.Equal(t, "innerHTML", resp.Header.Get("HX-Reswap"))
	assert.True(t, strings.HasPrefix(body, `<div class="alert"`), body)
	assert.Contains(t, body, "ROW001")

	// Orders always leave through a redirect to the chat link.
	resp, _ = env.do(t, http.MethodPost, "/catalog/medicamentos/order", url.Values{"to": {""}}, htmx)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "https://wa.me/?text="))
	assert.Empty(t, resp.Header.Get("HX-Redirect"))
}

func TestRowOperationErrors(t *testing.T) {
	env := newTestEnv(t, testConfig())

	resp, _ := env.post(t, "/catalog/medicamentos/toggle/row-1", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "catalog not open in this session")

	resp, _ = env.post(t, "/catalog/vitaminas/toggle/row-1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	env.get(t, "/catalog/medicamentos")
	resp, body := env.post(t, "/catalog/medicamentos/toggle/row-99", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body, "ROW001")

	resp, body = env.post(t, "/catalog/medicamentos/order", url.Values{"to": {"primary"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "ORD001")

	env.post(t, "/catalog/medicamentos/toggle/row-1", nil)
	resp, body = env.post(t, "/catalog/medicamentos/order", url.Values{"to": {"nowhere"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "ORD002")
}

func TestBackToDashboard(t *testing.T) {
	env := newTestEnv(t, testConfig())
	env.get(t, "/catalog/medicamentos")
	env.post(t, "/catalog/medicamentos/toggle/row-1", nil)

	resp, _ := env.post(t, "/dashboard", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// Off the catalog view the cart has nothing to resolve against.
	_, body := env.get(t, "/api/catalog/medicamentos/cart")
	assert.Contains(t, body, `"items":[]`)

	// Opening a catalog again starts a fresh cart on a fresh table.
	_, body = env.get(t, "/catalog/medicamentos")
	assert.Contains(t, body, "Dipirona")
	_, body = env.get(t, "/api/catalog/medicamentos/cart")
	assert.Contains(t, body, `"totalItems":0`)
}

func TestCatalogLoadFailure(t *testing.T) {
	env := newTestEnv(t, testConfig())
	env.failSheet("/sheet-med/export", http.StatusInternalServerError)

	resp, body := env.get(t, "/catalog/medicamentos")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "FETCH001")
	assert.Contains(t, body, "Tentar novamente")

	env.failSheet("/sheet-med/export", 0)
	resp, _ = env.post(t, "/catalog/medicamentos/refresh", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, body = env.get(t, "/catalog/medicamentos")
	assert.Contains(t, body, "Dipirona")
	assert.NotContains(t, body, "FETCH001")

	resp, body = env.get(t, "/catalog/vitaminas")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "CAT001")
}

func TestContactRedirect(t *testing.T) {
	env := newTestEnv(t, testConfig())

	resp, _ := env.get(t, "/contact/entrega")
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "https://wa.me/5511988517364?text=Ol%C3%A1", resp.Header.Get("Location"))

	resp, _ = env.get(t, "/contact/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPICatalogs(t *testing.T) {
	env := newTestEnv(t, testConfig())

	resp, body := env.get(t, "/api/catalogs")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []catalogInfo
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "medicamentos", list[0].Key)
	assert.Equal(t, "Diversos", list[1].SheetName)

	resp, body = env.get(t, "/api/catalog/medicamentos")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Key              string      `json:"key"`
		Headers          []string    `json:"headers"`
		Rows             []core.Row  `json:"rows"`
		PriceColumnIndex int         `json:"priceColumnIndex"`
		Columns          columnsInfo `json:"columns"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, []string{"Medicamento", "Laboratório", "Preço"}, got.Headers)
	assert.Len(t, got.Rows, 2)
	assert.Equal(t, 2, got.PriceColumnIndex)
	assert.Equal(t, columnsInfo{Name: "Medicamento", Lab: "Laboratório", Price: "Preço"}, got.Columns)

	resp, body = env.get(t, "/api/catalog/vitaminas")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Equal(t, "CAT001", errResp.Code)

	env.failSheet("/sheet-div/gviz/tq", http.StatusForbidden)
	resp, body = env.get(t, "/api/catalog/diversos")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &errResp))
	assert.Equal(t, "FETCH001", errResp.Code)
}

func TestExportXLSX(t *testing.T) {
	env := newTestEnv(t, testConfig())
	env.get(t, "/catalog/medicamentos")
	env.post(t, "/catalog/medicamentos/toggle/row-1", nil)

	resp, body := env.get(t, "/api/catalog/medicamentos/export.xlsx")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `filename="medicamentos-`)

	f, err := excelize.OpenReader(bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(catalogSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Medicamento", "Laboratório", "Preço"}, rows[0])
	assert.Equal(t, "Dipirona", rows[1][0])

	price, err := f.GetCellValue(catalogSheet, "C2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "10.5", price)

	order, err := f.GetRows(orderSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(order), 3)
	assert.Equal(t, "Dipirona", order[1][0])

	resp, _ = env.get(t, "/api/catalog/vitaminas/export.xlsx")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportOtherCatalogKeepsSession(t *testing.T) {
	env := newTestEnv(t, testConfig())
	env.get(t, "/catalog/medicamentos")
	env.post(t, "/catalog/medicamentos/toggle/row-1", nil)

	resp, body := env.get(t, "/api/catalog/diversos/export.xlsx")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	f, err := excelize.OpenReader(bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{catalogSheet}, f.GetSheetList(), "no cart sheet for a catalog not in view")
	rows, err := f.GetRows(catalogSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Luvas", rows[1][0])

	// The open catalog and its cart are untouched.
	_, body = env.get(t, "/api/catalog/medicamentos/cart")
	var cart struct {
		Items []core.CartItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &cart))
	assert.Len(t, cart.Items, 1)

	_, page := env.get(t, "/catalog/medicamentos")
	assert.Contains(t, page, "Resumo Detalhado")
}

func TestRecentOrdersAuth(t *testing.T) {
	env := newTestEnv(t, testConfig())

	resp, _ := env.get(t, "/api/orders")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = env.do(t, http.MethodGet, "/api/orders", nil, http.Header{"X-Api-Key": {"wrong"}})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := env.do(t, http.MethodGet, "/api/orders?limit=5", nil, http.Header{"X-Api-Key": {adminKey}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]\n", body)

	cfg := testConfig()
	cfg.Security.AdminAPIKeys = nil
	closed := newTestEnv(t, cfg)
	resp, _ = closed.do(t, http.MethodGet, "/api/orders", nil, http.Header{"X-Api-Key": {adminKey}})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, testConfig())
	env.get(t, "/")

	resp, body := env.get(t, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health struct {
		Status   string                  `json:"status"`
		Sessions int                     `json:"sessions"`
		Catalogs int                     `json:"catalogs"`
		Fetches  core.FetchLimiterStatus `json:"fetches"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 1, health.Sessions)
	assert.Equal(t, 2, health.Catalogs)
	assert.Equal(t, core.DefaultMaxConcurrentFetches, health.Fetches.MaxConcurrent)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Rate = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 2}
	env := newTestEnv(t, cfg)

	for i := 0; i < 2; i++ {
		resp, _ := env.get(t, "/healthz")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := env.get(t, "/api/catalogs")
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
	assert.Contains(t, body, "RATE001")
}

func TestRateLimiterWindow(t *testing.T) {
	rl := newRateLimiter(1, time.Minute)
	defer rl.stop()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("1.2.3.4"))
	assert.False(t, rl.allow("1.2.3.4"))
	assert.True(t, rl.allow("5.6.7.8"), "limits are per address")

	now = now.Add(61 * time.Second)
	assert.True(t, rl.allow("1.2.3.4"))

	rl.stop() // idempotent
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{core.ErrCatalogNotFound, http.StatusNotFound},
		{core.ErrRowNotFound, http.StatusConflict},
		{core.ErrEmptyCart, http.StatusBadRequest},
		{core.ErrUnknownDestination, http.StatusBadRequest},
		{core.ErrTooManyFetches, http.StatusServiceUnavailable},
		{core.ErrSheetUnavailable, http.StatusBadGateway},
		{core.ErrPayloadTooLarge, http.StatusBadGateway},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{io.EOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), "%v", tt.err)
	}
}
