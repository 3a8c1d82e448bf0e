// Package postgres implements the product repository on top of gorm.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/catalog-backend/internal/database"
	"github.com/javajoker/catalog-backend/internal/models"
	"github.com/javajoker/catalog-backend/internal/repository"
)

const uniqueViolationCode = "23505"

var _ repository.ProductRepository = (*ProductRepository)(nil)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Transaction(ctx context.Context, fn func(repo repository.ProductRepository) error) error {
	return database.WithTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		return fn(&ProductRepository{db: tx})
	})
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	// gorm inserts the product and its images inside one transaction
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return translateError(fmt.Errorf("failed to create product: %w", err))
	}
	return nil
}

func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Save(product).Error; err != nil {
		return translateError(fmt.Errorf("failed to save product: %w", err))
	}

	var pending []*models.ProductImage
	for i := range product.Images {
		if product.Images[i].ID == 0 {
			product.Images[i].ProductID = product.ID
			pending = append(pending, &product.Images[i])
		}
	}
	if len(pending) == 0 {
		return nil
	}

	if err := db.Create(pending).Error; err != nil {
		return translateError(fmt.Errorf("failed to insert product images: %w", err))
	}
	return nil
}

func (r *ProductRepository) DeleteImages(ctx context.Context, productID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductImage{}).Error; err != nil {
		return translateError(fmt.Errorf("failed to delete product images: %w", err))
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Select("Images").Delete(&models.Product{ID: id})
	if result.Error != nil {
		return translateError(fmt.Errorf("failed to delete product: %w", result.Error))
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	return database.WithTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete product images: %w", err)
		}
		if err := all.Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to delete products: %w", err)
		}
		return nil
	})
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.withImages(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

func (r *ProductRepository) FindByTitleOrSlug(ctx context.Context, title, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.withImages(ctx).
		Where("UPPER(title) = ? OR slug = ?", title, slug).
		First(&product).Error; err != nil {
		return nil, translateError(err)
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	products := []models.Product{}
	if err := r.withImages(ctx).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		return nil, translateError(fmt.Errorf("failed to fetch products: %w", err))
	}
	return products, nil
}

func (r *ProductRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *ProductRepository) withImages(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("product_images.id ASC")
	})
}

// translateError turns engine specific failures into repository errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return &repository.DuplicateError{Detail: pgErr.Detail, Err: err}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &repository.DuplicateError{Err: err}
	}

	return err
}
