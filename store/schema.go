package store

import "fmt"

// Known tables and columns for the generic primitives. Upsert and DeleteWhere
// refuse identifiers that are not listed here, so table or column names can
// never be smuggled in from request data.
var schemaTables = map[string]map[string]bool{
	"users": {
		"id": true, "name": true, "email": true, "password": true, "created_at": true,
	},
	"restaurants": {
		"id": true, "name": true, "address": true, "phone": true, "user_id": true, "created_at": true,
	},
	"menu_categories": {
		"id": true, "name": true, "sort_order": true, "created_at": true,
	},
	"menu_items": {
		"id": true, "restaurant_id": true, "category_id": true, "name": true,
		"description": true, "price": true, "image_url": true, "is_available": true, "created_at": true,
	},
	"orders": {
		"id": true, "restaurant_id": true, "table_number": true, "total_amount": true,
		"status": true, "created_at": true,
	},
	"order_items": {
		"id": true, "order_id": true, "menu_item_id": true, "quantity": true, "price": true,
	},
}

func validateTable(table string) (map[string]bool, error) {
	cols, ok := schemaTables[table]
	if !ok {
		return nil, fmt.Errorf("store: unknown table %q", table)
	}
	return cols, nil
}

func validateColumns(table string, cols map[string]bool, names []string) error {
	for _, n := range names {
		if !cols[n] {
			return fmt.Errorf("store: unknown column %q on table %q", n, table)
		}
	}
	return nil
}
