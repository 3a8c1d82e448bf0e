package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/catalog-backend/internal/database"
	"github.com/javajoker/catalog-backend/internal/models"
	"github.com/javajoker/catalog-backend/internal/repository"
)

func TestTranslateError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Detail: "Key (title)=(Tee) already exists."}
	detail, ok := repository.IsUniqueViolation(translateError(fmt.Errorf("insert: %w", pgErr)))
	assert.True(t, ok)
	assert.Equal(t, "Key (title)=(Tee) already exists.", detail)

	_, ok = repository.IsUniqueViolation(translateError(gorm.ErrDuplicatedKey))
	assert.True(t, ok)

	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound), repository.ErrNotFound)

	other := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, error(other), translateError(other))
	assert.NoError(t, translateError(nil))
}

// ProductRepositoryTestSuite runs against a real database named by
// TEST_DATABASE_DSN. The catalog tables are wiped before every test.
type ProductRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	db   *gorm.DB
	repo *ProductRepository
}

func (s *ProductRepositoryTestSuite) SetupSuite() {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		s.T().Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	s.Require().NoError(err)

	log, _ := test.NewNullLogger()
	s.Require().NoError(database.RunMigrations(db, log))

	s.ctx = context.Background()
	s.db = db
	s.repo = NewProductRepository(db)
}

func (s *ProductRepositoryTestSuite) TearDownSuite() {
	if s.db != nil {
		log, _ := test.NewNullLogger()
		database.Close(s.db, log)
	}
}

func (s *ProductRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.repo.DeleteAll(s.ctx))
}

func (s *ProductRepositoryTestSuite) create(title string, urls ...string) *models.Product {
	p := &models.Product{
		Title:  title,
		Price:  19.99,
		Gender: models.GenderUnisex,
		Images: models.NewProductImages(uuid.Nil, urls),
	}
	s.Require().NoError(s.repo.Create(s.ctx, p))
	return p
}

func (s *ProductRepositoryTestSuite) TestCreateAndFind() {
	p := s.create("Men's Quilted Jacket", "1.jpg", "2.jpg")
	s.NotEqual(uuid.Nil, p.ID)
	s.Equal("mens-quilted-jacket", p.Slug)

	byID, err := s.repo.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal([]string{"1.jpg", "2.jpg"}, byID.ImageURLs())

	byTitle, err := s.repo.FindByTitleOrSlug(s.ctx, "MEN'S QUILTED JACKET", "men's quilted jacket")
	s.Require().NoError(err)
	s.Equal(p.ID, byTitle.ID)

	_, err = s.repo.FindByID(s.ctx, uuid.New())
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *ProductRepositoryTestSuite) TestDuplicateTitle() {
	s.create("Cyber Tee")

	err := s.repo.Create(s.ctx, &models.Product{Title: "Cyber Tee", Slug: "other", Gender: models.GenderMen})
	detail, ok := repository.IsUniqueViolation(err)
	s.True(ok)
	s.Contains(detail, "Cyber Tee")
}

func (s *ProductRepositoryTestSuite) TestTransactionRollsBackImageReplacement() {
	p := s.create("Hoodie", "a.jpg", "b.jpg")

	err := s.repo.Transaction(s.ctx, func(tx repository.ProductRepository) error {
		if err := tx.DeleteImages(s.ctx, p.ID); err != nil {
			return err
		}
		p.Images = models.NewProductImages(p.ID, []string{"c.jpg"})
		if err := tx.Save(s.ctx, p); err != nil {
			return err
		}
		return errors.New("abort")
	})
	s.EqualError(err, "abort")

	stored, err := s.repo.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal([]string{"a.jpg", "b.jpg"}, stored.ImageURLs())
}

func (s *ProductRepositoryTestSuite) TestTransactionCommitsImageReplacement() {
	p := s.create("Bomber", "a.jpg")

	err := s.repo.Transaction(s.ctx, func(tx repository.ProductRepository) error {
		if err := tx.DeleteImages(s.ctx, p.ID); err != nil {
			return err
		}
		p.Images = models.NewProductImages(p.ID, []string{"x.jpg", "y.jpg"})
		return tx.Save(s.ctx, p)
	})
	s.Require().NoError(err)

	stored, err := s.repo.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal([]string{"x.jpg", "y.jpg"}, stored.ImageURLs())
}

func (s *ProductRepositoryTestSuite) TestListPagesAreDisjoint() {
	for i := 0; i < 5; i++ {
		s.create(fmt.Sprintf("Item %d", i))
	}

	seen := map[uuid.UUID]bool{}
	for offset := 0; offset < 5; offset += 2 {
		page, err := s.repo.List(s.ctx, 2, offset)
		s.Require().NoError(err)
		for _, p := range page {
			s.False(seen[p.ID])
			seen[p.ID] = true
		}
	}
	s.Len(seen, 5)
}

func (s *ProductRepositoryTestSuite) TestDeleteRemovesImages() {
	p := s.create("Cap", "1.jpg")

	s.Require().NoError(s.repo.Delete(s.ctx, p.ID))
	s.ErrorIs(s.repo.Delete(s.ctx, p.ID), repository.ErrNotFound)

	var count int64
	s.Require().NoError(s.db.Model(&models.ProductImage{}).Where("product_id = ?", p.ID).Count(&count).Error)
	s.Zero(count)
}

func TestProductRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryTestSuite))
}
