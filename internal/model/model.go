// Package model declares the record types the service persists and the
// dependency order between their tables.
package model

// Tables returns every registered model in creation order: tables that are
// referenced by a foreign key come before the tables that reference them.
// Consumers that clear data walk this slice in reverse.
func Tables() []any {
	return []any{
		&Customer{},
		&Product{},
		&Order{},
	}
}
