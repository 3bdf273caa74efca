package catalogs

import (
	"testing"
	"time"

	"github.com/JonMunkholm/catalogo/internal/config"
	"github.com/JonMunkholm/catalogo/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInCatalogs(t *testing.T) {
	all := core.All()
	require.Len(t, all, 2)

	// Dashboard order: Diversos first.
	assert.Equal(t, Diversos, all[0].Key)
	assert.Equal(t, "Produtos Diversos", all[0].Title)
	assert.Equal(t, DiversosSheetName, all[0].Sheet.SheetName)

	assert.Equal(t, Medicamentos, all[1].Key)
	assert.Equal(t, "Pedido Mínimo 3 itens diversos", all[1].Subtitle)
	assert.Empty(t, all[1].Sheet.SheetName)
}

func TestContactCards(t *testing.T) {
	cards := core.Contacts()
	require.Len(t, cards, 2)

	recarga, ok := core.GetContact("recarga")
	require.True(t, ok)
	assert.Equal(t, "Olá, gostaria de fazer uma Recarga Claro/Tim.", recarga.Message)

	bilhete, ok := core.GetContact("bilhete")
	require.True(t, ok)
	assert.Equal(t, "Olá, gostaria de falar sobre Bilhete Único.", bilhete.Message)
}

func TestConfigure(t *testing.T) {
	before := map[string]core.SheetRef{}
	for _, d := range core.All() {
		before[d.Key] = d.Sheet
	}
	t.Cleanup(func() {
		for key, ref := range before {
			// The built-in refs have every field the test changes set.
			require.NoError(t, core.SetSheet(key, ref))
		}
	})

	require.NoError(t, Configure(config.SheetsConfig{
		MedicamentosID:    "med-sheet",
		DiversosSheetName: "Ofertas",
	}))

	med, _ := core.Get(Medicamentos)
	assert.Equal(t, core.SheetRef{SheetID: "med-sheet"}, med.Sheet)

	div, _ := core.Get(Diversos)
	assert.Equal(t, core.SheetRef{SheetID: DefaultSheetID, SheetName: "Ofertas"}, div.Sheet)
}

func TestSourceConfig(t *testing.T) {
	sc := SourceConfig(config.SheetsConfig{
		BaseURL:       "http://sheets.test",
		FetchTimeout:  5 * time.Second,
		MaxBytes:      1024,
		MaxConcurrent: 3,
		MaxWaitTime:   time.Second,
	})
	assert.Equal(t, core.SourceConfig{
		BaseURL:       "http://sheets.test",
		Timeout:       5 * time.Second,
		MaxBytes:      1024,
		MaxConcurrent: 3,
		MaxWait:       time.Second,
	}, sc)
}

func TestDestinations(t *testing.T) {
	cfg := config.ContactsConfig{Number1: "111", Label1: "Loja", Number2: "222", Label2: "Dr"}
	assert.Equal(t, []core.Destination{
		{Key: "primary", Label: "Loja", Number: "111"},
		{Key: "secondary", Label: "Dr", Number: "222"},
	}, Destinations(cfg))

	cfg.Number2 = ""
	assert.Len(t, Destinations(cfg), 1)
}
