package catalogs

import (
	"github.com/JonMunkholm/catalogo/internal/config"
	"github.com/JonMunkholm/catalogo/internal/core"
)

// Configure points the built-in catalogs at the sheets named in cfg.
// Empty settings keep the defaults.
func Configure(cfg config.SheetsConfig) error {
	if err := core.SetSheet(Medicamentos, core.SheetRef{SheetID: cfg.MedicamentosID}); err != nil {
		return err
	}
	return core.SetSheet(Diversos, core.SheetRef{
		SheetID:   cfg.DiversosID,
		SheetName: cfg.DiversosSheetName,
	})
}

// SourceConfig translates cfg into the HTTP sheet source settings.
func SourceConfig(cfg config.SheetsConfig) core.SourceConfig {
	return core.SourceConfig{
		BaseURL:       cfg.BaseURL,
		Timeout:       cfg.FetchTimeout,
		MaxBytes:      cfg.MaxBytes,
		MaxConcurrent: cfg.MaxConcurrent,
		MaxWait:       cfg.MaxWaitTime,
	}
}

// Destinations lists the configured order destinations. The secondary one
// is left out when its number is empty.
func Destinations(cfg config.ContactsConfig) []core.Destination {
	dests := []core.Destination{{Key: "primary", Label: cfg.Label1, Number: cfg.Number1}}
	if cfg.Number2 != "" {
		dests = append(dests, core.Destination{Key: "secondary", Label: cfg.Label2, Number: cfg.Number2})
	}
	return dests
}
