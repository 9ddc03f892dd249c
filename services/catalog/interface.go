package catalog

import (
	"consultly/models"

	serviceRepo "consultly/database/repository/service"
)

// CatalogService manages the consultation offerings users can book.
type CatalogService interface {
	Create(svc *models.Service) error
	GetByID(id string) (*models.Service, error)
	Update(id string, upd models.ServiceUpdate) (*models.Service, error)
	// List returns the catalog sorted by name; activeOnly hides retired
	// offerings.
	List(activeOnly bool) ([]models.Service, error)
	Delete(id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}

func NewDefaultCatalogService(repo serviceRepo.ServiceRepository) CatalogService {
	return &DefaultCatalogService{Repo: repo}
}

func (s *DefaultCatalogService) Create(svc *models.Service) error {
	return s.Repo.Create(svc)
}

func (s *DefaultCatalogService) GetByID(id string) (*models.Service, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultCatalogService) Update(id string, upd models.ServiceUpdate) (*models.Service, error) {
	return s.Repo.Update(id, upd)
}

func (s *DefaultCatalogService) List(activeOnly bool) ([]models.Service, error) {
	return s.Repo.List(activeOnly)
}

func (s *DefaultCatalogService) Delete(id string) error {
	return s.Repo.Delete(id)
}
