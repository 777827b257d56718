package common

import (
	ic "github.com/Uthara1292/small-business-analysis/innercommunication"
)

type MenuItem struct {
	Name  string
	Price ic.Money
}

type MenuSection struct {
	Category ic.Category
	Items    []MenuItem
}

// Menu is an ordered category -> item -> price table. Order matters: it
// fixes the catalog order, and with it which item a given random draw picks.
type Menu []MenuSection

// CatalogEntry is one sellable item.
type CatalogEntry struct {
	Item     string
	Category ic.Category
	Price    ic.Money
}

var DefaultMenu = Menu{
	{Category: ic.Coffee, Items: []MenuItem{
		{"Espresso", ic.MustMoney("3.00")},
		{"Americano", ic.MustMoney("3.50")},
		{"Latte", ic.MustMoney("4.50")},
		{"Cappuccino", ic.MustMoney("4.50")},
		{"Mocha", ic.MustMoney("5.00")},
		{"Cold Brew", ic.MustMoney("4.75")},
		{"Macchiato", ic.MustMoney("3.75")},
	}},
	{Category: ic.Tea, Items: []MenuItem{
		{"Green Tea", ic.MustMoney("3.25")},
		{"Earl Grey", ic.MustMoney("3.25")},
		{"Chai Latte", ic.MustMoney("4.50")},
		{"Peppermint Tea", ic.MustMoney("3.25")},
		{"Matcha Latte", ic.MustMoney("5.25")},
	}},
	{Category: ic.Bakery, Items: []MenuItem{
		{"Croissant", ic.MustMoney("3.75")},
		{"Blueberry Muffin", ic.MustMoney("3.50")},
		{"Chocolate Chip Cookie", ic.MustMoney("2.50")},
		{"Bagel", ic.MustMoney("3.00")},
		{"Scone", ic.MustMoney("3.75")},
	}},
	{Category: ic.Food, Items: []MenuItem{
		{"Avocado Toast", ic.MustMoney("8.50")},
		{"Breakfast Sandwich", ic.MustMoney("7.50")},
		{"Grilled Cheese", ic.MustMoney("6.50")},
	}},
}

// BuildCatalog flattens the menu, keeping menu order.
func BuildCatalog(menu Menu) []CatalogEntry {
	var catalog []CatalogEntry
	for _, section := range menu {
		for _, item := range section.Items {
			catalog = append(catalog, CatalogEntry{
				Item:     item.Name,
				Category: section.Category,
				Price:    item.Price,
			})
		}
	}
	return catalog
}

// catalogIndex maps item name to entry.
func catalogIndex(catalog []CatalogEntry) map[string]CatalogEntry {
	index := make(map[string]CatalogEntry, len(catalog))
	for _, entry := range catalog {
		index[entry.Item] = entry
	}
	return index
}
