package repositories_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestDB opens an isolated in-memory SQLite database. Shared cache keeps
// the database alive across the connections GORM pools; the per-test name
// keeps tests from seeing each other's data.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	// A single connection sidesteps SQLite table locks without changing
	// any repository behavior.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Product{}, &models.ProductImage{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newProduct(title, slug string, images ...string) *models.Product {
	rows := make([]models.ProductImage, 0, len(images))
	for _, url := range images {
		rows = append(rows, models.ProductImage{URL: url})
	}
	return &models.Product{
		Title:  title,
		Slug:   slug,
		Sizes:  []string{"S", "M"},
		Gender: "men",
		Tags:   []string{"shirt"},
		Images: rows,
	}
}

func TestGORMProductRepository_CreateAndReadBack(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	product := newProduct("Men's Flannel", "mens_flannel", "a.jpg", "b.jpg")
	err := repo.Create(product)
	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)

	got, err := repo.GetByTerm(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Men's Flannel", got.Title)
	assert.Equal(t, "mens_flannel", got.Slug)
	assert.Equal(t, float64(0), got.Price)
	assert.Equal(t, 0, got.Stock)
	assert.ElementsMatch(t, []string{"a.jpg", "b.jpg"}, got.ImageURLs())
}

func TestGORMProductRepository_CreateWithoutImages(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	assert.NoError(t, repo.Create(newProduct("Plain Tee", "plain_tee")))

	got, err := repo.GetByTerm("plain_tee")
	assert.NoError(t, err)
	assert.NotNil(t, got.Images)
	assert.Empty(t, got.ImageURLs())
}

func TestGORMProductRepository_DuplicateSlugConflict(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	first := newProduct("Shoe", "shoe", "shoe.jpg")
	assert.NoError(t, repo.Create(first))

	err := repo.Create(newProduct("Other Shoe", "shoe"))
	var conflict *repositories.ConflictError
	assert.ErrorAs(t, err, &conflict)

	// The first product is untouched and still retrievable by slug.
	got, err := repo.GetByTerm("shoe")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.ElementsMatch(t, []string{"shoe.jpg"}, got.ImageURLs())

	products, err := repo.List(10, 0)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestGORMProductRepository_GetByTerm(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	product := newProduct("Men's Flannel", "mens_flannel")
	assert.NoError(t, repo.Create(product))

	// By exact id.
	got, err := repo.GetByTerm(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)

	// By title, case-insensitively.
	got, err = repo.GetByTerm("men's flannel")
	assert.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)

	// By slug, ignoring case of the term.
	got, err = repo.GetByTerm("MENS_FLANNEL")
	assert.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)

	// A well-formed UUID that matches nothing.
	_, err = repo.GetByTerm("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Free text matching neither title nor slug.
	_, err = repo.GetByTerm("no such product")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMProductRepository_SparseUpdate(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	product := newProduct("Men's Flannel", "mens_flannel", "a.jpg")
	product.Price = 75
	product.Stock = 7
	assert.NoError(t, repo.Create(product))

	price := 99.5
	updated, err := repo.Update(product.ID, &models.ProductPatch{Price: &price})
	assert.NoError(t, err)

	// Only price changed; everything else, images included, is untouched.
	assert.Equal(t, 99.5, updated.Price)
	assert.Equal(t, "Men's Flannel", updated.Title)
	assert.Equal(t, "mens_flannel", updated.Slug)
	assert.Equal(t, 7, updated.Stock)
	assert.Equal(t, []string{"S", "M"}, updated.Sizes)
	assert.Equal(t, []string{"shirt"}, updated.Tags)
	assert.ElementsMatch(t, []string{"a.jpg"}, updated.ImageURLs())
}

func TestGORMProductRepository_UpdateImageReplacement(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	product := newProduct("Jacket", "jacket", "old1.jpg", "old2.jpg")
	assert.NoError(t, repo.Create(product))

	// A present image list replaces the whole set.
	images := []string{"new1.jpg", "new2.jpg", "new3.jpg"}
	updated, err := repo.Update(product.ID, &models.ProductPatch{Images: &images})
	assert.NoError(t, err)
	assert.ElementsMatch(t, images, updated.ImageURLs())

	// An absent image field leaves the set alone.
	title := "Quilted Jacket"
	updated, err = repo.Update(product.ID, &models.ProductPatch{Title: &title})
	assert.NoError(t, err)
	assert.Equal(t, "Quilted Jacket", updated.Title)
	assert.ElementsMatch(t, images, updated.ImageURLs())

	// An explicit empty list removes every image.
	empty := []string{}
	updated, err = repo.Update(product.ID, &models.ProductPatch{Images: &empty})
	assert.NoError(t, err)
	assert.NotNil(t, updated.Images)
	assert.Empty(t, updated.ImageURLs())

	// No orphaned image rows remain.
	var count int64
	assert.NoError(t, db.Model(&models.ProductImage{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGORMProductRepository_UpdateNotFound(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	product := newProduct("Shoe", "shoe")
	assert.NoError(t, repo.Create(product))

	title := "Ghost"
	_, err := repo.Update("3f6f6f6f-0000-0000-0000-000000000000", &models.ProductPatch{Title: &title})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Nothing was modified by the failed update.
	products, err := repo.List(10, 0)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Shoe", products[0].Title)
}

func TestGORMProductRepository_UpdateSlugConflict(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	assert.NoError(t, repo.Create(newProduct("Shoe", "shoe")))
	other := newProduct("Boot", "boot")
	assert.NoError(t, repo.Create(other))

	slug := "shoe"
	_, err := repo.Update(other.ID, &models.ProductPatch{Slug: &slug})
	var conflict *repositories.ConflictError
	assert.ErrorAs(t, err, &conflict)

	// The rejected update rolled back; the boot kept its slug.
	got, err := repo.GetByTerm("boot")
	assert.NoError(t, err)
	assert.Equal(t, other.ID, got.ID)
}

func TestGORMProductRepository_Delete(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	product := newProduct("Shoe", "shoe", "a.jpg")
	assert.NoError(t, repo.Create(product))

	removed, err := repo.Delete(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.ID, removed.ID)

	_, err = repo.GetByTerm(product.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.Delete(product.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMProductRepository_DeleteAll(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	assert.NoError(t, repo.Create(newProduct("One", "one", "1.jpg")))
	assert.NoError(t, repo.Create(newProduct("Two", "two", "2.jpg")))
	assert.NoError(t, repo.Create(newProduct("Three", "three")))

	count, removed, err := repo.DeleteAll()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, removed, 3)

	products, err := repo.List(10, 0)
	assert.NoError(t, err)
	assert.Empty(t, products)

	// Deleting an empty catalog removes zero rows without error.
	count, removed, err = repo.DeleteAll()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Empty(t, removed)
}

func TestGORMProductRepository_ListPagination(t *testing.T) {
	repo := repositories.NewGORMProductRepository(newTestDB(t))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		product := newProduct(fmt.Sprintf("Product %d", i), fmt.Sprintf("product_%d", i))
		product.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		assert.NoError(t, repo.Create(product))
	}

	first, err := repo.List(2, 0)
	assert.NoError(t, err)
	second, err := repo.List(2, 2)
	assert.NoError(t, err)
	third, err := repo.List(2, 4)
	assert.NoError(t, err)

	// Pages are ordered by creation time, disjoint, and cover everything.
	assert.Equal(t, []string{"product_0", "product_1"}, slugsOf(first))
	assert.Equal(t, []string{"product_2", "product_3"}, slugsOf(second))
	assert.Equal(t, []string{"product_4"}, slugsOf(third))
}

func slugsOf(products []models.Product) []string {
	slugs := make([]string, 0, len(products))
	for _, p := range products {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}
