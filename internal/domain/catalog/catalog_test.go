package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	eq, err := Load()
	require.NoError(t, err)

	assert.True(t, eq.HasType("chainsaw"))
	assert.True(t, eq.HasType("brush_cutter"))
	assert.True(t, eq.HasType("sprayer"))
	assert.False(t, eq.HasType("tractor"))

	stihl, ok := eq.Brand("stihl")
	require.True(t, ok)
	assert.True(t, stihl.AcceptsModel("MS 250"))
	assert.True(t, stihl.AcceptsModel("ms 250"))
	assert.False(t, stihl.AcceptsModel("Unknown 1"))
	assert.False(t, stihl.AcceptsModel(""))

	other, ok := eq.Brand(FreeTextBrand)
	require.True(t, ok)
	assert.True(t, other.AcceptsModel("Qualquer modelo"))

	_, ok = eq.Brand("Acme")
	assert.False(t, ok)
}

func TestParseEquipment_Invalid(t *testing.T) {
	_, err := ParseEquipment([]byte("types: ["))
	assert.Error(t, err)

	_, err = ParseEquipment([]byte("types: []\nbrands: []\n"))
	assert.Error(t, err)
}

func TestDefaultColumns(t *testing.T) {
	cols, err := DefaultColumns()
	require.NoError(t, err)
	require.Len(t, cols, 8)

	assert.Equal(t, "received", cols[0].Slug)
	assert.Equal(t, "testing", cols[5].Slug)
	assert.Equal(t, "pickup", cols[6].Slug)
	assert.Equal(t, "finished", cols[7].Slug)
	for i, c := range cols {
		assert.Equal(t, (i+1)*10, c.Position)
	}
}
