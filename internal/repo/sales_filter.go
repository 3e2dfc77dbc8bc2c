package repo

import "github.com/rogerio-castellano/retail-tracker/internal/models"

// SalesFilter narrows a sales listing. Date bounds are inclusive; nil means unbounded.
type SalesFilter struct {
	Since  *models.Date
	Until  *models.Date
	Offset *int
	Limit  *int
}

// Matches reports whether the sale falls inside the date bounds. Paging is ignored.
func (f SalesFilter) Matches(s models.SaleRecord) bool {
	if f.Since != nil && s.Date.Before(*f.Since) {
		return false
	}
	if f.Until != nil && s.Date.After(*f.Until) {
		return false
	}
	return true
}
