package repositories

import (
	"strings"
	"sync"

	"catalog/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It mirrors the storage contract closely enough for service tests: slug
// uniqueness, term resolution, sparse patches and insertion order.
type MockProductRepository struct {
	products []models.Product
	nextImg  uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// Create adds a new product, rejecting duplicate slugs.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.Slug == product.Slug {
			return &ConflictError{Detail: "duplicate key value violates unique constraint on slug: " + product.Slug}
		}
	}

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	images := make([]models.ProductImage, 0, len(product.Images))
	for _, img := range product.Images {
		r.nextImg++
		images = append(images, models.ProductImage{ID: r.nextImg, ProductID: product.ID, URL: img.URL})
	}
	product.Images = images

	stored := *product
	stored.Images = append([]models.ProductImage(nil), images...)
	r.products = append(r.products, stored)
	return nil
}

// List returns a page of products in insertion order.
func (r *MockProductRepository) List(limit, offset int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.products) {
		return []models.Product{}, nil
	}
	end := offset + limit
	if end > len(r.products) {
		end = len(r.products)
	}

	page := make([]models.Product, 0, end-offset)
	for _, p := range r.products[offset:end] {
		page = append(page, copyProduct(p))
	}
	return page, nil
}

// GetByTerm resolves a term the same way the GORM repository does.
func (r *MockProductRepository) GetByTerm(term string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, err := uuid.Parse(term); err == nil {
		for _, p := range r.products {
			if p.ID == term {
				found := copyProduct(p)
				return &found, nil
			}
		}
		return nil, ErrNotFound
	}

	for _, p := range r.products {
		if strings.EqualFold(p.Title, term) || p.Slug == strings.ToLower(term) {
			found := copyProduct(p)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Update applies a sparse patch to an existing product.
func (r *MockProductRepository) Update(id string, patch *models.ProductPatch) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	if patch.Slug != nil {
		for i, p := range r.products {
			if i != idx && p.Slug == *patch.Slug {
				return nil, &ConflictError{Detail: "duplicate key value violates unique constraint on slug: " + *patch.Slug}
			}
		}
	}

	p := &r.products[idx]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Sizes != nil {
		p.Sizes = append([]string(nil), (*patch.Sizes)...)
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Tags != nil {
		p.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.Images != nil {
		images := make([]models.ProductImage, 0, len(*patch.Images))
		for _, url := range *patch.Images {
			r.nextImg++
			images = append(images, models.ProductImage{ID: r.nextImg, ProductID: id, URL: url})
		}
		p.Images = images
	}

	updated := copyProduct(*p)
	return &updated, nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.products {
		if p.ID == id {
			removed := copyProduct(p)
			removed.Images = []models.ProductImage{}
			r.products = append(r.products[:i], r.products[i+1:]...)
			return &removed, nil
		}
	}
	return nil, ErrNotFound
}

// DeleteAll removes every product.
func (r *MockProductRepository) DeleteAll() (int64, []models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		removed = append(removed, copyProduct(p))
	}
	count := int64(len(r.products))
	r.products = nil
	return count, removed, nil
}

func copyProduct(p models.Product) models.Product {
	c := p
	c.Sizes = append([]string(nil), p.Sizes...)
	c.Tags = append([]string(nil), p.Tags...)
	c.Images = append([]models.ProductImage{}, p.Images...)
	return c
}
