package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registerTestCatalogs(t)

	assert.Equal(t, 2, Count())

	def, ok := Get("diversos")
	require.True(t, ok)
	assert.Equal(t, "Diversos", def.Sheet.SheetName)

	_, ok = Get("vitaminas")
	assert.False(t, ok)

	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, "medicamentos", all[0].Key)
	assert.Equal(t, "diversos", all[1].Key)

	card, ok := GetContact("entrega")
	require.True(t, ok)
	assert.Equal(t, "Entrega", card.Title)
	assert.Len(t, Contacts(), 1)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	registerTestCatalogs(t)

	assert.Panics(t, func() { Register(testMedicamentos) })
	assert.Panics(t, func() { RegisterContact(ContactCard{Key: "entrega"}) })
}

func TestRegistry_OrderingTiesBreakByKey(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(CatalogDefinition{Key: "b"})
	Register(CatalogDefinition{Key: "a"})
	Register(CatalogDefinition{Key: "z", Order: -1})

	var keys []string
	for _, def := range All() {
		keys = append(keys, def.Key)
	}
	assert.Equal(t, []string{"z", "a", "b"}, keys)
}

func TestSetSheet(t *testing.T) {
	registerTestCatalogs(t)

	require.NoError(t, SetSheet("diversos", SheetRef{SheetID: "other"}))
	def, _ := Get("diversos")
	assert.Equal(t, SheetRef{SheetID: "other", SheetName: "Diversos"}, def.Sheet)

	require.NoError(t, SetSheet("diversos", SheetRef{SheetName: "Promo"}))
	def, _ = Get("diversos")
	assert.Equal(t, SheetRef{SheetID: "other", SheetName: "Promo"}, def.Sheet)

	assert.ErrorIs(t, SetSheet("vitaminas", SheetRef{SheetID: "x"}), ErrCatalogNotFound)
}
