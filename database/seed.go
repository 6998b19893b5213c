package database

import (
	"context"

	"github.com/satyam-pandey/scan-to-order/store"
)

type categorySeed struct {
	name      string
	sortOrder int
}

var defaultCategories = []categorySeed{
	{"Starters", 1},
	{"Mains", 2},
	{"Desserts", 3},
	{"Drinks", 4},
}

// SeedDefaultCategories makes sure the default menu categories exist. Runs
// on every startup, the upsert keyed on the unique name keeps it idempotent
// and refreshes sort order if it drifted.
func SeedDefaultCategories(ctx context.Context, st *store.Store) error {
	for _, c := range defaultCategories {
		_, err := st.Upsert(ctx, "menu_categories", map[string]any{
			"name":       c.name,
			"sort_order": c.sortOrder,
		}, []string{"name"})
		if err != nil {
			return err
		}
	}
	return nil
}
