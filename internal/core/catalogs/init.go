// Package catalogs registers the built-in catalogs and contact cards with
// the core registry. Import this package to ensure they are registered.
package catalogs

// Both catalogs read from the same spreadsheet by default: Medicamentos
// uses its first tab and Diversos the tab named "Diversos". Deployments
// point them elsewhere through SHEET_ID_* configuration.
const DefaultSheetID = "1kEbdTVJ0YoXM_1VZ06ebYIMDFea5_avo7L2hR0AfXkg"

// Catalog keys.
const (
	Medicamentos = "medicamentos"
	Diversos     = "diversos"
)
