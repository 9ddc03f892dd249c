package serviceRepo

import (
	"consultly/models"
)

// ServiceRepository defines data access for the consultation catalog.
type ServiceRepository interface {
	// Create inserts a new catalog entry; names are unique.
	Create(s *models.Service) error
	// GetByID retrieves a catalog entry by its unique ID.
	GetByID(id string) (*models.Service, error)
	// Update applies a partial update and returns the merged record.
	Update(id string, upd models.ServiceUpdate) (*models.Service, error)
	// List retrieves catalog entries, optionally only active ones.
	List(activeOnly bool) ([]models.Service, error)
	// Delete removes a catalog entry by its ID.
	Delete(id string) error
}
