package services

import (
	"catalog/internal/models"
	"catalog/internal/repositories"
)

const (
	defaultListLimit  = 10
	defaultListOffset = 0
)

// CreateProductInput is the validated payload for creating a product.
// Price and Stock default to zero; an empty Slug is derived from the title.
type CreateProductInput struct {
	Title       string
	Price       float64
	Description string
	Slug        string
	Stock       int
	Sizes       []string
	Gender      string
	Tags        []string
	Images      []string
}

// UpdateProductInput is a sparse payload: nil fields are left untouched.
// A non-nil empty Images list removes every image.
type UpdateProductInput struct {
	Title       *string
	Price       *float64
	Description *string
	Slug        *string
	Stock       *int
	Sizes       *[]string
	Gender      *string
	Tags        *[]string
	Images      *[]string
}

// ProductService handles business logic related to products: slug
// canonicalization, pagination defaults and orchestration over the
// repository. Shape validation happens before inputs reach this layer.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct persists a new product aggregate. The slug is normalized
// before the insert, so the stored slug is always canonical.
func (s *ProductService) CreateProduct(in CreateProductInput) (*models.Product, error) {
	base := in.Slug
	if base == "" {
		base = in.Title
	}

	images := make([]models.ProductImage, 0, len(in.Images))
	for _, url := range in.Images {
		images = append(images, models.ProductImage{URL: url})
	}

	product := &models.Product{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Slug:        NormalizeSlug(base),
		Stock:       in.Stock,
		Sizes:       in.Sizes,
		Gender:      in.Gender,
		Tags:        in.Tags,
		Images:      images,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts retrieves a page of products. Non-positive limit and
// negative offset fall back to the defaults.
func (s *ProductService) ListProducts(limit, offset int) ([]models.Product, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = defaultListOffset
	}
	return s.repo.List(limit, offset)
}

// GetProductByTerm retrieves a single product by id, title or slug.
func (s *ProductService) GetProductByTerm(term string) (*models.Product, error) {
	return s.repo.GetByTerm(term)
}

// UpdateProduct applies a sparse update. A slug present in the payload is
// normalized; when only the title changes, the slug is re-derived from it.
func (s *ProductService) UpdateProduct(id string, in UpdateProductInput) (*models.Product, error) {
	patch := &models.ProductPatch{
		Title:       in.Title,
		Price:       in.Price,
		Description: in.Description,
		Stock:       in.Stock,
		Sizes:       in.Sizes,
		Gender:      in.Gender,
		Tags:        in.Tags,
		Images:      in.Images,
	}

	switch {
	case in.Slug != nil:
		slug := NormalizeSlug(*in.Slug)
		patch.Slug = &slug
	case in.Title != nil:
		slug := NormalizeSlug(*in.Title)
		patch.Slug = &slug
	}

	return s.repo.Update(id, patch)
}

// DeleteProduct removes a product by its ID, returning the removed row.
func (s *ProductService) DeleteProduct(id string) (*models.Product, error) {
	return s.repo.Delete(id)
}

// RemoveAllProducts wipes the catalog, returning the count of removed
// products and the removed rows.
func (s *ProductService) RemoveAllProducts() (int64, []models.Product, error) {
	return s.repo.DeleteAll()
}
