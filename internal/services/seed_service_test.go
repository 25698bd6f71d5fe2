package services_test

import (
	"testing"

	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestSeedService_Run_Repopulates(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	productService := services.NewProductService(repo)
	seedService := services.NewSeedService(productService)

	// Pre-existing data must be wiped before seeding.
	_, err := productService.CreateProduct(services.CreateProductInput{Title: "Leftover"})
	assert.NoError(t, err)

	err = seedService.Run()
	assert.NoError(t, err)

	fixtureCount := len(services.FixtureProducts())
	products, err := productService.ListProducts(fixtureCount+10, 0)
	assert.NoError(t, err)
	assert.Len(t, products, fixtureCount)

	// The leftover product is gone and every fixture is retrievable by slug.
	_, err = productService.GetProductByTerm("leftover")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	for _, fixture := range services.FixtureProducts() {
		product, err := productService.GetProductByTerm(services.NormalizeSlug(fixture.Title))
		assert.NoError(t, err)
		assert.Equal(t, fixture.Title, product.Title)
		assert.ElementsMatch(t, fixture.Images, product.ImageURLs())
	}
}

func TestSeedService_Run_IsRepeatable(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	productService := services.NewProductService(repo)
	seedService := services.NewSeedService(productService)

	assert.NoError(t, seedService.Run())
	assert.NoError(t, seedService.Run())

	products, err := productService.ListProducts(100, 0)
	assert.NoError(t, err)
	assert.Len(t, products, len(services.FixtureProducts()))
}
