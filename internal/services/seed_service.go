// internal/services/seed_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/javajoker/catalog-backend/internal/seed"
)

const seedExecuted = "seed executed"

// seedConcurrency bounds the inserts in flight so the pool is not drained.
const seedConcurrency = 4

type SeedService struct {
	products *ProductService
	data     []seed.Product
	logger   *logrus.Logger
}

func NewSeedService(products *ProductService, logger *logrus.Logger) *SeedService {
	return NewSeedServiceWithData(products, seed.Products, logger)
}

func NewSeedServiceWithData(products *ProductService, data []seed.Product, logger *logrus.Logger) *SeedService {
	return &SeedService{products: products, data: data, logger: logger}
}

// RunSeed wipes the catalog and inserts the seed products concurrently.
// Products inserted before a failure are not removed.
func (s *SeedService) RunSeed(ctx context.Context) (string, error) {
	if err := s.products.DeleteAllProducts(ctx); err != nil {
		return "", err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seedConcurrency)

	for _, p := range s.data {
		req := newSeedRequest(p)
		g.Go(func() error {
			_, err := s.products.Create(gctx, req)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Seed run failed")
		return "", err
	}

	s.logger.WithContext(ctx).WithField("products", len(s.data)).Info("Seed executed")
	return seedExecuted, nil
}

func newSeedRequest(p seed.Product) *CreateProductRequest {
	price := p.Price
	stock := p.Stock
	req := &CreateProductRequest{
		Title:  p.Title,
		Price:  &price,
		Slug:   p.Slug,
		Stock:  &stock,
		Sizes:  p.Sizes,
		Gender: p.Gender,
		Tags:   p.Tags,
		Images: p.Images,
	}
	if p.Description != "" {
		description := p.Description
		req.Description = &description
	}
	return req
}
