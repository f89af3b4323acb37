package models

// Expense categories offered when logging a community cost.
const (
	CategoryMaintenance    = "mantenimiento"
	CategoryCleaning       = "limpieza"
	CategorySecurity       = "seguridad"
	CategoryGardening      = "jardineria"
	CategoryImprovements   = "mejoras"
	CategoryAdministration = "administracion"
	CategoryServices       = "servicios"
	CategoryOther          = "otros"

	// CategorySettlement marks a settlement-derived pseudo-expense.
	// It is not a shared cost and is excluded from every aggregate.
	CategorySettlement = "Liquidación"
)

var categoryLabels = map[string]string{
	CategoryMaintenance:    "Mantenimiento",
	CategoryCleaning:       "Limpieza",
	CategorySecurity:       "Seguridad",
	CategoryGardening:      "Jardinería",
	CategoryImprovements:   "Mejoras",
	CategoryAdministration: "Administración",
	CategoryServices:       "Servicios",
	CategoryOther:          "Otros",
	CategorySettlement:     "Liquidación",
}

// IsSettlement reports whether category marks a settlement entry.
func IsSettlement(category string) bool {
	return category == CategorySettlement
}

// IsValidCategory reports whether category is one of the known categories.
func IsValidCategory(category string) bool {
	_, ok := categoryLabels[category]
	return ok
}

// CategoryLabel returns the human-readable label of a category.
// Unknown categories are returned unchanged.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}
