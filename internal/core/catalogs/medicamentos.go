package catalogs

import "github.com/JonMunkholm/catalogo/internal/core"

func init() {
	registerMedicamentos()
}

func registerMedicamentos() {
	core.Register(core.CatalogDefinition{
		Key:      Medicamentos,
		Title:    "Medicamentos",
		Subtitle: "Pedido Mínimo 3 itens diversos",
		Action:   "Ver Tabela",
		Sheet:    core.SheetRef{SheetID: DefaultSheetID},
		Order:    2,
	})
}
