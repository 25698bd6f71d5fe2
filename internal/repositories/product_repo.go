package repositories

import (
	"catalog/internal/models"
)

// ProductRepository defines the interface for product aggregate data access.
// Every write that touches both the product row and its image rows is
// transactional: a partially written aggregate is never observable.
type ProductRepository interface {
	// Create persists the product row plus its image rows in one
	// transaction and assigns the product a new id.
	Create(product *models.Product) error

	// List returns a page of products with their images aggregated.
	List(limit, offset int) ([]models.Product, error)

	// GetByTerm resolves term as an id when it parses as a UUID, otherwise
	// as a case-insensitive title or slug match. Returns ErrNotFound when
	// nothing matches.
	GetByTerm(term string) (*models.Product, error)

	// Update applies a sparse patch and returns the full updated aggregate.
	Update(id string, patch *models.ProductPatch) (*models.Product, error)

	// Delete removes one product and its images, returning the removed row.
	Delete(id string) (*models.Product, error)

	// DeleteAll removes every product and image, returning the number of
	// products removed along with the removed rows.
	DeleteAll() (int64, []models.Product, error)
}
