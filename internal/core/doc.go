// Package core provides the business logic for the spreadsheet catalog.
//
// The package is independent of any UI or transport layer. It is used by
// the web handlers and by the catalogctl tool.
//
// # Architecture
//
//   - Parsing: [ParseTable] and [SplitLine] turn a CSV payload into a [Table];
//     [ParseCurrency] and [ClassifyColumns] interpret its cells.
//   - Sources: a [SheetSource] fetches a spreadsheet by [SheetRef].
//     [HTTPSheetSource] downloads the public CSV export of a Google Sheet.
//   - Registry: catalogs and quick-contact cards are registered at init time.
//   - Sessions: each browser gets a [Session] holding its view, its last
//     fetched table and its cart.
//   - Orders: [Summarize], [BuildOrderMessage] and [WhatsAppURL] turn a cart
//     into a chat deep link; hand-offs are recorded in an [OrderLog].
//
// # Catalog Registry
//
//	core.Register(core.CatalogDefinition{
//	    Key:   "medicamentos",
//	    Title: "Medicamentos",
//	    Sheet: core.SheetRef{SheetID: "1kEb..."},
//	})
//
// # Loading
//
// A table is fetched with a single attempt and replaces the previous one in
// full. Each load is tagged with a generation; only the newest load's result
// is applied to a session.
//
// # Error Handling
//
// Fetch and order errors are mapped to Portuguese user messages by
// [MapError]. Malformed CSV is never an error: it degrades to empty cells,
// [NoColumn] or a zero price.
package core
