package repositories

import (
	"errors"
	"strings"

	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// imagesByRow preloads a product's images ordered by row id, which is
// insertion order.
func imagesByRow(db *gorm.DB) *gorm.DB {
	return db.Order("products_images.id ASC")
}

// Create inserts the product row and its image rows in one transaction.
// The product's ID is assigned here; a failure on any image insert rolls
// the whole aggregate back.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	images := product.Images
	product.Images = nil

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		for i := range images {
			images[i].ID = 0
			images[i].ProductID = product.ID
		}
		// One batch insert: every image row is visible at commit or none is.
		return tx.Create(&images).Error
	})
	if err != nil {
		return classifyError("product create", err)
	}

	product.Images = images
	return nil
}

// List retrieves a page of products with their images. Ordered by creation
// time then id so offset pagination is stable.
func (r *GORMProductRepository) List(limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Preload("Images", imagesByRow).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, classifyError("product list", err)
	}
	for i := range products {
		if products[i].Images == nil {
			products[i].Images = []models.ProductImage{}
		}
	}
	return products, nil
}

// GetByTerm retrieves a single product. A term that parses as a UUID is
// looked up by id; anything else is matched against the title
// (case-insensitively) or the slug (lower-cased).
func (r *GORMProductRepository) GetByTerm(term string) (*models.Product, error) {
	query := r.db.Preload("Images", imagesByRow)
	if _, err := uuid.Parse(term); err == nil {
		query = query.Where("id = ?", term)
	} else {
		query = query.Where(
			"UPPER(title) = ? OR slug = ?",
			strings.ToUpper(term), strings.ToLower(term),
		)
	}

	var product models.Product
	if err := query.First(&product).Error; err != nil {
		return nil, classifyError("product lookup", err)
	}
	if product.Images == nil {
		product.Images = []models.ProductImage{}
	}
	return &product, nil
}

// Update applies a sparse patch inside one transaction: existence check,
// then an update restricted to the columns present in the patch, then -
// only when the patch carries an image list - a full replacement of the
// image rows. The updated aggregate is re-read before commit.
func (r *GORMProductRepository) Update(id string, patch *models.ProductPatch) (*models.Product, error) {
	var updated models.Product

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		values, cols := patchColumns(patch)
		if len(cols) > 0 {
			if err := tx.Model(&existing).Select(cols).Updates(values).Error; err != nil {
				return err
			}
		}

		if patch.Images != nil {
			// Full replacement, never an incremental diff. An empty list
			// means "remove all images".
			if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			if len(*patch.Images) > 0 {
				rows := make([]models.ProductImage, 0, len(*patch.Images))
				for _, url := range *patch.Images {
					rows = append(rows, models.ProductImage{ProductID: id, URL: url})
				}
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		return tx.Preload("Images", imagesByRow).First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, classifyError("product update", err)
	}

	if updated.Images == nil {
		updated.Images = []models.ProductImage{}
	}
	return &updated, nil
}

// patchColumns translates the patch into the column set to update. Each
// updatable column is checked individually; statement construction never
// iterates request keys, so nothing outside this set can be written.
func patchColumns(patch *models.ProductPatch) (models.Product, []string) {
	var values models.Product
	var cols []string

	if patch.Title != nil {
		values.Title = *patch.Title
		cols = append(cols, "title")
	}
	if patch.Price != nil {
		values.Price = *patch.Price
		cols = append(cols, "price")
	}
	if patch.Description != nil {
		values.Description = *patch.Description
		cols = append(cols, "description")
	}
	if patch.Slug != nil {
		values.Slug = *patch.Slug
		cols = append(cols, "slug")
	}
	if patch.Stock != nil {
		values.Stock = *patch.Stock
		cols = append(cols, "stock")
	}
	if patch.Sizes != nil {
		values.Sizes = *patch.Sizes
		cols = append(cols, "sizes")
	}
	if patch.Gender != nil {
		values.Gender = *patch.Gender
		cols = append(cols, "gender")
	}
	if patch.Tags != nil {
		values.Tags = *patch.Tags
		cols = append(cols, "tags")
	}
	return values, cols
}

// Delete removes one product and its image rows, returning the removed row.
func (r *GORMProductRepository) Delete(id string) (*models.Product, error) {
	var removed models.Product

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&removed, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, classifyError("product delete", err)
	}

	removed.Images = []models.ProductImage{}
	return &removed, nil
}

// DeleteAll removes every product and image row, returning the count of
// products removed and the removed rows themselves.
func (r *GORMProductRepository) DeleteAll() (int64, []models.Product, error) {
	var removed []models.Product
	var count int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("created_at ASC, id ASC").Find(&removed).Error; err != nil {
			return err
		}
		bulk := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := bulk.Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		res := bulk.Delete(&models.Product{})
		if res.Error != nil {
			return res.Error
		}
		count = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, nil, classifyError("product delete all", err)
	}
	return count, removed, nil
}
