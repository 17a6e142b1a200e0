package model

// AutoMigrateの対象
func All() []any {
	return []any{
		&User{},
		&Profile{},
		&Category{},
		&Tag{},
		&Specification{},
		&Product{},
		&Review{},
		&Image{},
		&Basket{},
		&Sale{},
		&Order{},
		&OrderProduct{},
		&Payment{},
		&AuditLog{},
	}
}
