package common

import (
	"testing"

	ic "github.com/Uthara1292/small-business-analysis/innercommunication"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := BuildCatalog(DefaultMenu)
	require.Len(t, catalog, 20)

	perCategory := map[ic.Category]int{}
	seen := map[string]bool{}
	for _, entry := range catalog {
		assert.False(t, seen[entry.Item], "%s listed twice", entry.Item)
		seen[entry.Item] = true
		perCategory[entry.Category]++
		assert.True(t, entry.Price.IsPositive(), entry.Item)
	}
	assert.Equal(t, map[ic.Category]int{ic.Coffee: 7, ic.Tea: 5, ic.Bakery: 5, ic.Food: 3}, perCategory)

	assert.Equal(t, "Espresso", catalog[0].Item)
	assert.Equal(t, "3.00", catalog[0].Price.String())
	assert.Equal(t, "Grilled Cheese", catalog[19].Item)
	assert.Equal(t, ic.Food, catalog[19].Category)
}

func TestBuildCatalogKeepsMenuOrder(t *testing.T) {
	menu := Menu{
		{Category: ic.Tea, Items: []MenuItem{{"Sencha", ic.MustMoney("2.00")}}},
		{Category: ic.Coffee, Items: []MenuItem{
			{"Ristretto", ic.MustMoney("2.50")},
			{"Lungo", ic.MustMoney("2.75")},
		}},
	}

	catalog := BuildCatalog(menu)
	require.Len(t, catalog, 3)
	assert.Equal(t, "Sencha", catalog[0].Item)
	assert.Equal(t, ic.Tea, catalog[0].Category)
	assert.Equal(t, "Ristretto", catalog[1].Item)
	assert.Equal(t, ic.Coffee, catalog[1].Category)
	assert.Equal(t, "Lungo", catalog[2].Item)
	assert.Equal(t, "2.75", catalog[2].Price.String())

	assert.Empty(t, BuildCatalog(nil))
}
