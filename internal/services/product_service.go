// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/javajoker/catalog-backend/internal/models"
	"github.com/javajoker/catalog-backend/internal/repository"
	"github.com/javajoker/catalog-backend/internal/utils"
)

type ProductService struct {
	repo       repository.ProductRepository
	logger     *logrus.Logger
	tracer     trace.Tracer
	operations metric.Int64Counter
}

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Price       *float64 `json:"price" validate:"required,min=0"`
	Description *string  `json:"description,omitempty"`
	Slug        string   `json:"slug,omitempty" validate:"omitempty,max=255"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	Sizes       []string `json:"sizes,omitempty" validate:"omitempty,dive,product_size"`
	Gender      string   `json:"gender,omitempty" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,required,max=100"`
	Images      []string `json:"images,omitempty" validate:"omitempty,dive,required,max=2048"`
}

// UpdateProductRequest carries a partial update. Nil fields are left
// untouched; a non-nil Images replaces the whole image set.
type UpdateProductRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	Description *string  `json:"description,omitempty"`
	Slug        *string  `json:"slug,omitempty" validate:"omitempty,max=255"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,min=0"`
	Sizes       []string `json:"sizes,omitempty" validate:"omitempty,dive,product_size"`
	Gender      *string  `json:"gender,omitempty" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,dive,required,max=100"`
	Images      []string `json:"images,omitempty" validate:"omitempty,dive,required,max=2048"`
}

// ProductResponse is the API shape of a product: images are plain URLs.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description *string   `json:"description"`
	Slug        string    `json:"slug"`
	Stock       int       `json:"stock"`
	Sizes       []string  `json:"sizes"`
	Gender      string    `json:"gender"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProductResponse(p *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       nonNil(p.Sizes),
		Gender:      string(p.Gender),
		Tags:        nonNil(p.Tags),
		Images:      p.ImageURLs(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func NewProductService(repo repository.ProductRepository, logger *logrus.Logger, tracer trace.Tracer, meter metric.Meter) *ProductService {
	operations, err := meter.Int64Counter(
		"catalog.product.operations",
		metric.WithDescription("Catalog product operations by outcome"),
	)
	if err != nil {
		logger.WithError(err).Warn("Failed to create product operations counter")
	}

	return &ProductService{
		repo:       repo,
		logger:     logger,
		tracer:     tracer,
		operations: operations,
	}
}

func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Create")
	defer span.End()
	span.SetAttributes(attribute.String("product.title", req.Title))

	if err := utils.ValidateStruct(req); err != nil {
		return nil, s.finish(ctx, span, "create", ValidationError("validation failed", err))
	}

	product := &models.Product{
		Title:       req.Title,
		Price:       *req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Sizes:       pq.StringArray(nonNil(req.Sizes)),
		Gender:      models.GenderUnisex,
		Tags:        pq.StringArray(nonNil(req.Tags)),
		Images:      models.NewProductImages(uuid.Nil, req.Images),
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Gender != "" {
		product.Gender = models.Gender(req.Gender)
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, s.finish(ctx, span, "create", s.handleDBError(ctx, "create", err))
	}

	span.SetAttributes(attribute.String("product.id", product.ID.String()))
	s.finish(ctx, span, "create", nil)
	return NewProductResponse(product), nil
}

func (s *ProductService) FindAll(ctx context.Context, params utils.PaginationParams) ([]*ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.FindAll")
	defer span.End()
	span.SetAttributes(attribute.Int("page.limit", params.Limit), attribute.Int("page.offset", params.Offset))

	products, err := s.repo.List(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, s.finish(ctx, span, "list", s.handleDBError(ctx, "list", err))
	}

	result := make([]*ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, NewProductResponse(&products[i]))
	}

	span.SetAttributes(attribute.Int("product.count", len(result)))
	s.finish(ctx, span, "list", nil)
	return result, nil
}

func (s *ProductService) FindOne(ctx context.Context, term string) (*ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.FindOne")
	defer span.End()
	span.SetAttributes(attribute.String("product.term", term))

	product, err := s.findOne(ctx, term)
	if err != nil {
		return nil, s.finish(ctx, span, "read", err)
	}

	s.finish(ctx, span, "read", nil)
	return NewProductResponse(product), nil
}

// findOne resolves term as an id when it is a canonical UUID, otherwise as
// a case-insensitive title or a slug.
func (s *ProductService) findOne(ctx context.Context, term string) (*models.Product, error) {
	var (
		product *models.Product
		err     error
	)

	if id, ok := parseUUID(term); ok {
		product, err = s.repo.FindByID(ctx, id)
	} else {
		product, err = s.repo.FindByTitleOrSlug(ctx, strings.ToUpper(term), strings.ToLower(term))
	}

	if errors.Is(err, repository.ErrNotFound) {
		return nil, NotFoundError("Product with %s not found", term)
	}
	if err != nil {
		return nil, s.handleDBError(ctx, "read", err)
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.Update")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", id.String()))

	if err := utils.ValidateStruct(req); err != nil {
		return nil, s.finish(ctx, span, "update", ValidationError("validation failed", err))
	}

	product, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, s.finish(ctx, span, "update", NotFoundError("Product with id %s not found", id))
	}
	if err != nil {
		return nil, s.finish(ctx, span, "update", s.handleDBError(ctx, "update", err))
	}

	req.applyTo(product)

	// Image replacement and the field update commit or roll back together
	err = s.repo.Transaction(ctx, func(tx repository.ProductRepository) error {
		if req.Images != nil {
			if err := tx.DeleteImages(ctx, product.ID); err != nil {
				return err
			}
			product.Images = models.NewProductImages(product.ID, req.Images)
		}
		return tx.Save(ctx, product)
	})
	if err != nil {
		span.SetAttributes(attribute.Bool("tx.rolled_back", true))
		return nil, s.finish(ctx, span, "update", s.handleDBError(ctx, "update", err))
	}

	updated, err := s.findOne(ctx, id.String())
	if err != nil {
		return nil, s.finish(ctx, span, "update", err)
	}

	s.finish(ctx, span, "update", nil)
	return NewProductResponse(updated), nil
}

func (r *UpdateProductRequest) applyTo(p *models.Product) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.Slug != nil {
		p.Slug = *r.Slug
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if r.Sizes != nil {
		p.Sizes = pq.StringArray(r.Sizes)
	}
	if r.Gender != nil {
		p.Gender = models.Gender(*r.Gender)
	}
	if r.Tags != nil {
		p.Tags = pq.StringArray(r.Tags)
	}
}

func (s *ProductService) Remove(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.Remove")
	defer span.End()
	span.SetAttributes(attribute.String("product.id", id.String()))

	product, err := s.findOne(ctx, id.String())
	if err != nil {
		return s.finish(ctx, span, "delete", err)
	}

	if err := s.repo.Delete(ctx, product.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return s.finish(ctx, span, "delete", NotFoundError("Product with %s not found", id))
		}
		return s.finish(ctx, span, "delete", s.handleDBError(ctx, "delete", err))
	}

	s.finish(ctx, span, "delete", nil)
	return nil
}

// DeleteAllProducts clears both catalog tables in one statement batch.
func (s *ProductService) DeleteAllProducts(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.DeleteAllProducts")
	defer span.End()

	if err := s.repo.DeleteAll(ctx); err != nil {
		return s.finish(ctx, span, "delete_all", s.handleDBError(ctx, "delete_all", err))
	}

	s.finish(ctx, span, "delete_all", nil)
	return nil
}

// Ping reports whether the backing store is reachable.
func (s *ProductService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// handleDBError classifies a store failure. Only uniqueness violations
// carry store detail back to the caller.
func (s *ProductService) handleDBError(ctx context.Context, operation string, err error) *Error {
	if detail, ok := repository.IsUniqueViolation(err); ok {
		return ConflictError(detail, err)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return NotFoundError("Product not found")
	}

	s.logger.WithContext(ctx).
		WithError(err).
		WithField("operation", operation).
		Error("Catalog store operation failed")
	return InternalError(err)
}

func (s *ProductService) finish(ctx context.Context, span trace.Span, operation string, err error) error {
	result := "success"
	if err != nil {
		result = string(KindOf(err))
		span.RecordError(err)
		span.SetStatus(codes.Error, PublicMessage(err))
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if s.operations != nil {
		s.operations.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", result),
		))
	}
	return err
}

func parseUUID(term string) (uuid.UUID, bool) {
	// Only the canonical 36 character form counts; slugs may be bare hex
	if len(term) != 36 {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(term)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
