package services

import (
	"errors"
	"fmt"
	"sync"
)

// SeedService resets the catalog to the fixture data set.
type SeedService struct {
	products *ProductService
}

// NewSeedService creates a new SeedService.
func NewSeedService(products *ProductService) *SeedService {
	return &SeedService{
		products: products,
	}
}

// Run wipes the catalog and inserts every fixture product. The creates run
// concurrently and independently: one failing fixture does not stop the
// others, each create keeps its own all-or-nothing transaction, and the
// overall result joins every individual outcome.
func (s *SeedService) Run() error {
	if _, _, err := s.products.RemoveAllProducts(); err != nil {
		return fmt.Errorf("failed to clear catalog before seeding: %w", err)
	}

	fixtures := FixtureProducts()

	var wg sync.WaitGroup
	errs := make([]error, len(fixtures))

	for i, in := range fixtures {
		wg.Add(1)
		go func(i int, in CreateProductInput) {
			defer wg.Done()
			if _, err := s.products.CreateProduct(in); err != nil {
				errs[i] = fmt.Errorf("failed to seed product %q: %w", in.Title, err)
			}
		}(i, in)
	}
	wg.Wait()

	return errors.Join(errs...)
}
