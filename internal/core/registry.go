package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	catalogs   = make(map[string]CatalogDefinition)
	contacts   = make(map[string]ContactCard)
	registryMu sync.RWMutex
)

// Register adds a catalog definition to the registry.
// Panics if a catalog with the same key is already registered.
func Register(def CatalogDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := catalogs[def.Key]; exists {
		panic(fmt.Sprintf("catalog already registered: %s", def.Key))
	}
	catalogs[def.Key] = def
}

// RegisterContact adds a quick-contact card to the registry.
// Panics if a card with the same key is already registered.
func RegisterContact(card ContactCard) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := contacts[card.Key]; exists {
		panic(fmt.Sprintf("contact card already registered: %s", card.Key))
	}
	contacts[card.Key] = card
}

// Get returns a catalog definition by key.
func Get(key string) (CatalogDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := catalogs[key]
	return def, ok
}

// GetContact returns a quick-contact card by key.
func GetContact(key string) (ContactCard, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	card, ok := contacts[key]
	return card, ok
}

// SetSheet replaces the sheet a registered catalog reads from.
// Empty fields of ref leave the current value unchanged.
func SetSheet(key string, ref SheetRef) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	def, ok := catalogs[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrCatalogNotFound, key)
	}
	if ref.SheetID != "" {
		def.Sheet.SheetID = ref.SheetID
	}
	if ref.SheetName != "" {
		def.Sheet.SheetName = ref.SheetName
	}
	catalogs[key] = def
	return nil
}

// All returns all catalogs sorted by dashboard order, then key.
func All() []CatalogDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]CatalogDefinition, 0, len(catalogs))
	for _, def := range catalogs {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].Key < result[j].Key
	})
	return result
}

// Contacts returns all quick-contact cards sorted by dashboard order, then key.
func Contacts() []ContactCard {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]ContactCard, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, c)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].Key < result[j].Key
	})
	return result
}

// Count returns the number of registered catalogs.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(catalogs)
}

// Clear removes all registered catalogs and contact cards.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	catalogs = make(map[string]CatalogDefinition)
	contacts = make(map[string]ContactCard)
}
