package templates

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/catalogo/internal/core"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func catalogParams() CatalogParams {
	table := &core.Table{
		Headers: []string{"Produto", "Laboratório", "Preço"},
		Rows: []core.Row{
			{ID: "row-1", Data: map[string]string{"Produto": "Dipirona <500mg>", "Laboratório": "EMS", "Preço": "R$ 10,50"}},
			{ID: "row-2", Data: map[string]string{"Produto": "Luvas", "Laboratório": "-", "Preço": "R$ 5,00"}},
		},
		PriceColumnIndex: 2,
	}
	return CatalogParams{
		State: core.SessionState{
			View:        "medicamentos",
			Catalog:     core.CatalogDefinition{Key: "medicamentos", Title: "Medicamentos"},
			Table:       table,
			LastUpdated: time.Date(2026, 3, 1, 14, 5, 9, 0, time.UTC),
			Quantities:  map[string]int{"row-1": 1},
			Items:       []core.CartItem{{Row: table.Rows[0], Quantity: 1}},
		},
		Columns: core.Columns{Name: "Produto", Lab: "Laboratório", Price: "Preço"},
		Summary: core.OrderSummary{
			Lines:      []core.OrderLine{{Name: "Dipirona <500mg>", Lab: "EMS", Quantity: 1, UnitPrice: 10.5, Subtotal: 10.5}},
			TotalItems: 1,
			Total:      10.5,
			HasPrice:   true,
		},
		Destinations: []core.Destination{{Key: "primary", Label: "Enviar para Dr. VB"}},
		Location:     time.UTC,
	}
}

func TestCatalogPartial(t *testing.T) {
	body := render(t, CatalogPartial(catalogParams()))

	assert.Contains(t, body, `<div id="catalog" class="catalog">`)
	assert.Contains(t, body, `<div id="catalog-alerts" aria-live="polite"></div>`)
	assert.Contains(t, body, "Atualizado às 14:05:09")
	assert.Contains(t, body, "Dipirona &lt;500mg&gt;")
	assert.NotContains(t, body, "<500mg>")

	assert.Contains(t, body, `<tr class="selected">`)
	assert.Contains(t, body, `<tr class="">`)
	assert.Contains(t, body, `<td class="price">R$ 10,50</td>`)
	assert.Contains(t, body, `hx-post="/catalog/medicamentos/toggle/row-2" hx-target="#catalog" hx-swap="outerHTML"`)
	assert.Contains(t, body, `hx-swap="outerHTML" hx-trigger="change, submit"`)

	// A selected row at quantity 1 cannot go lower.
	assert.Contains(t, body, `value="dec"> <button class="step" type="submit" disabled>`)
	assert.Contains(t, body, "Resumo Detalhado")
}

func TestCatalogPartial_States(t *testing.T) {
	p := catalogParams()
	p.State.Loading = true
	assert.Contains(t, render(t, CatalogPartial(p)), "Carregando dados da planilha")

	p = catalogParams()
	p.Error = &core.UserMessage{Message: "Falhou", Action: "Tente novamente", Code: "FETCH001"}
	body := render(t, CatalogPartial(p))
	assert.Contains(t, body, "Código: FETCH001")
	assert.Contains(t, body, `hx-post="/catalog/medicamentos/refresh"`)
	assert.NotContains(t, body, `<table`)

	p = catalogParams()
	p.State.Table = &core.Table{Headers: []string{"Produto"}, PriceColumnIndex: core.NoColumn}
	p.State.Items = nil
	body = render(t, CatalogPartial(p))
	assert.Contains(t, body, "Nenhum item encontrado.")
	assert.NotContains(t, body, "Finalizar Pedido")
}

func TestQuantitySelector(t *testing.T) {
	body := render(t, quantitySelector("medicamentos", "row-1", 3, true))
	assert.Contains(t, body, `value="dec"> <button class="step" type="submit">&minus;`)
	assert.Contains(t, body, `name="qty" min="1" value="3">`)

	body = render(t, quantitySelector("medicamentos", "row-1", 1, false))
	assert.Contains(t, body, `name="qty" min="1" value="1" disabled>`)
	assert.Contains(t, body, `value="inc"> <button class="step" type="submit" disabled>+`)
}

func TestCartSummary(t *testing.T) {
	p := catalogParams()
	body := render(t, CartSummary("medicamentos", p.Summary, p.Destinations))
	assert.Contains(t, body, `<span class="cart-count">1 item</span>`)
	assert.Contains(t, body, `<div class="line-meta">EMS &bull; Qtd: 1</div>`)
	assert.Contains(t, body, `target="_blank" action="/catalog/medicamentos/order"`)
	assert.NotContains(t, body, "hx-post")
	assert.Contains(t, body, `name="to" value="primary">Enviar para Dr. VB</button>`)

	s := core.OrderSummary{
		Lines:      []core.OrderLine{{Name: "Luvas", Lab: "-", Quantity: 4}},
		TotalItems: 4,
	}
	body = render(t, CartSummary("medicamentos", s, nil))
	assert.Contains(t, body, "4 itens")
	assert.Contains(t, body, "Sob Consulta")
	assert.Contains(t, body, `<div class="line-meta">Qtd: 4</div>`)
	assert.Contains(t, body, `<div class="line-subtotal">-</div>`)
}

func TestPage_HTMXScript(t *testing.T) {
	body := render(t, Page("Medicamentos", "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"))
	assert.Contains(t, body, `<script src="https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js" defer></script>`)
	assert.Contains(t, body, `<title>Medicamentos | Estrela da Leste</title>`)
	assert.Contains(t, body, `&#34;responseHandling&#34;`)

	body = render(t, Page("Início", ""))
	assert.NotContains(t, body, "<script")
	assert.NotContains(t, body, "htmx-config")
}

func TestErrorAlert(t *testing.T) {
	body := render(t, ErrorAlert("Falhou", "", "ROW001", "/catalog/medicamentos/refresh"))
	assert.Contains(t, body, `<p class="alert-code">Código: ROW001</p>`)
	assert.NotContains(t, body, "alert-action")
	assert.Contains(t, body, "Tentar novamente")

	body = render(t, ErrorAlert("Falhou", "Volte", "", ""))
	assert.NotContains(t, body, "<form")
	assert.NotContains(t, body, "alert-code")
}
