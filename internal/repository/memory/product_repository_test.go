package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/catalog-backend/internal/models"
	"github.com/javajoker/catalog-backend/internal/repository"
)

func newProduct(title string, urls ...string) *models.Product {
	return &models.Product{
		Title:  title,
		Price:  10,
		Gender: models.GenderUnisex,
		Images: models.NewProductImages(uuid.Nil, urls),
	}
}

func TestCreateAssignsIdentifiers(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()

	p := newProduct("Cyber Tee", "1.jpg", "2.jpg")
	require.NoError(t, repo.Create(ctx, p))

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "cyber-tee", p.Slug)
	assert.Equal(t, uint(1), p.Images[0].ID)
	assert.Equal(t, uint(2), p.Images[1].ID)
	assert.Equal(t, 2, repo.ImageCount(p.ID))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.jpg", "2.jpg"}, found.ImageURLs())
}

func TestCreateRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	require.NoError(t, repo.Create(ctx, newProduct("Cyber Tee")))

	err := repo.Create(ctx, newProduct("Cyber Tee"))
	detail, ok := repository.IsUniqueViolation(err)
	require.True(t, ok)
	assert.Contains(t, detail, "(title)=(Cyber Tee)")

	dupSlug := newProduct("Other title")
	dupSlug.Slug = "cyber-tee"
	_, ok = repository.IsUniqueViolation(repo.Create(ctx, dupSlug))
	assert.True(t, ok)
}

func TestFindByTitleOrSlug(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	p := newProduct("Cyber Tee")
	require.NoError(t, repo.Create(ctx, p))

	found, err := repo.FindByTitleOrSlug(ctx, "CYBER TEE", "nope")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	found, err = repo.FindByTitleOrSlug(ctx, "NOPE", "cyber-tee")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)

	_, err = repo.FindByTitleOrSlug(ctx, "NOPE", "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	p := newProduct("Cyber Tee", "a.jpg")
	require.NoError(t, repo.Create(ctx, p))

	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(tx repository.ProductRepository) error {
		require.NoError(t, tx.DeleteImages(ctx, p.ID))
		require.NoError(t, tx.Create(ctx, newProduct("Inside Tx")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 1, repo.ImageCount(p.ID))
	all, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestTransactionCommits(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	p := newProduct("Cyber Tee", "a.jpg")
	require.NoError(t, repo.Create(ctx, p))

	err := repo.Transaction(ctx, func(tx repository.ProductRepository) error {
		if err := tx.DeleteImages(ctx, p.ID); err != nil {
			return err
		}
		p.Images = models.NewProductImages(p.ID, []string{"b.jpg", "c.jpg"})
		return tx.Save(ctx, p)
	})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.jpg", "c.jpg"}, found.ImageURLs())
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, newProduct(title)))
	}

	page, err := repo.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "B", page[0].Title)
	assert.Equal(t, "C", page[1].Title)

	page, err = repo.List(ctx, 2, 5)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestDeleteAndDeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository()
	p := newProduct("A", "a.jpg")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Create(ctx, newProduct("B", "b.jpg")))

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.Equal(t, 0, repo.ImageCount(p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), repository.ErrNotFound)

	require.NoError(t, repo.DeleteAll(ctx))
	all, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}
