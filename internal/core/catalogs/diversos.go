package catalogs

import "github.com/JonMunkholm/catalogo/internal/core"

// DiversosSheetName is the tab holding the assorted-products list.
const DiversosSheetName = "Diversos"

func init() {
	registerDiversos()
}

func registerDiversos() {
	core.Register(core.CatalogDefinition{
		Key:      Diversos,
		Title:    "Produtos Diversos",
		Subtitle: "Variedades e Ofertas",
		Action:   "Ver Catálogo",
		Sheet:    core.SheetRef{SheetID: DefaultSheetID, SheetName: DiversosSheetName},
		Order:    1,
	})
}
