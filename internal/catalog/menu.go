package catalog

import (
	"strings"

	"github.com/scamshield/railshield/internal/models"
)

// menuEntry is one keyed item of a menu section.
type menuEntry struct {
	Key  string
	Item models.MenuItem
}

// menuSection groups menu entries by meal type. Sections and their entries
// are scanned in declaration order during partial matching, so the first
// declared key wins when an input overlaps several keys.
type menuSection struct {
	Name    string
	Entries []menuEntry
}

// IRCTC official menu pricing (2024-2025).
var menuSections = []menuSection{
	{
		Name: "beverages",
		Entries: []menuEntry{
			{"tea", models.MenuItem{Price: 10, Item: "Tea", Category: "Beverage"}},
			{"coffee", models.MenuItem{Price: 15, Item: "Coffee", Category: "Beverage"}},
			{"cold drink", models.MenuItem{Price: 20, Item: "Cold Drink", Category: "Beverage"}},
			{"water", models.MenuItem{Price: 15, Item: "Water Bottle (1L)", Category: "Beverage"}},
			{"mineral water", models.MenuItem{Price: 15, Item: "Mineral Water", Category: "Beverage"}},
			{"water bottle", models.MenuItem{Price: 15, Item: "Water Bottle", Category: "Beverage"}},
			{"juice", models.MenuItem{Price: 30, Item: "Packaged Juice", Category: "Beverage"}},
		},
	},
	{
		Name: "snacks",
		Entries: []menuEntry{
			{"samosa", models.MenuItem{Price: 15, Item: "Samosa (2 pcs)", Category: "Snack"}},
			{"vada pav", models.MenuItem{Price: 20, Item: "Vada Pav", Category: "Snack"}},
			{"pakora", models.MenuItem{Price: 25, Item: "Pakora", Category: "Snack"}},
			{"sandwich", models.MenuItem{Price: 40, Item: "Veg Sandwich", Category: "Snack"}},
			{"veg sandwich", models.MenuItem{Price: 40, Item: "Veg Sandwich", Category: "Snack"}},
			{"burger", models.MenuItem{Price: 50, Item: "Veg Burger", Category: "Snack"}},
			{"chips", models.MenuItem{Price: 10, Item: "Chips", Category: "Snack"}},
			{"biscuits", models.MenuItem{Price: 10, Item: "Biscuits", Category: "Snack"}},
		},
	},
	{
		Name: "meals",
		Entries: []menuEntry{
			{"thali", models.MenuItem{Price: 120, Item: "Veg Thali", Category: "Meal"}},
			{"veg thali", models.MenuItem{Price: 120, Item: "Veg Thali", Category: "Meal"}},
			{"non-veg thali", models.MenuItem{Price: 150, Item: "Non-Veg Thali", Category: "Meal"}},
			{"non veg thali", models.MenuItem{Price: 150, Item: "Non-Veg Thali", Category: "Meal"}},
			{"biryani", models.MenuItem{Price: 100, Item: "Veg Biryani", Category: "Meal"}},
			{"chicken biryani", models.MenuItem{Price: 140, Item: "Chicken Biryani", Category: "Meal"}},
			{"veg biryani", models.MenuItem{Price: 100, Item: "Veg Biryani", Category: "Meal"}},
			{"fried rice", models.MenuItem{Price: 80, Item: "Fried Rice", Category: "Meal"}},
			{"paratha", models.MenuItem{Price: 30, Item: "Paratha (2 pcs)", Category: "Meal"}},
		},
	},
	{
		Name: "breakfast",
		Entries: []menuEntry{
			{"idli", models.MenuItem{Price: 40, Item: "Idli (4 pcs)", Category: "Breakfast"}},
			{"dosa", models.MenuItem{Price: 50, Item: "Dosa", Category: "Breakfast"}},
			{"upma", models.MenuItem{Price: 35, Item: "Upma", Category: "Breakfast"}},
			{"poha", models.MenuItem{Price: 30, Item: "Poha", Category: "Breakfast"}},
		},
	},
}

// LookupMenuItem resolves a free-text item name against the official menu.
// It tries an exact key match across all sections first, then a partial
// match where either the key contains the input or the input contains the
// key, scanning in declaration order. Returns nil when nothing matches.
func LookupMenuItem(name string) *models.MenuItem {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil
	}

	for _, section := range menuSections {
		for _, entry := range section.Entries {
			if entry.Key == key {
				item := entry.Item
				return &item
			}
		}
	}

	for _, section := range menuSections {
		for _, entry := range section.Entries {
			if strings.Contains(key, entry.Key) || strings.Contains(entry.Key, key) {
				item := entry.Item
				return &item
			}
		}
	}

	return nil
}
