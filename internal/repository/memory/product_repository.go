// Package memory is an in-process product repository used for local runs
// and tests. It enforces the same uniqueness rules as the SQL schema.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/javajoker/catalog-backend/internal/models"
	"github.com/javajoker/catalog-backend/internal/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

type state struct {
	products    map[uuid.UUID]models.Product
	order       map[uuid.UUID]int64
	images      []models.ProductImage
	nextImageID uint
	seq         int64
}

func (s *state) clone() *state {
	c := &state{
		products:    make(map[uuid.UUID]models.Product, len(s.products)),
		order:       make(map[uuid.UUID]int64, len(s.order)),
		images:      append([]models.ProductImage(nil), s.images...),
		nextImageID: s.nextImageID,
		seq:         s.seq,
	}
	for id, p := range s.products {
		c.products[id] = p
	}
	for id, seq := range s.order {
		c.order[id] = seq
	}
	return c
}

// ProductRepository is an in-memory implementation of repository.ProductRepository
type ProductRepository struct {
	mu   *sync.RWMutex
	data *state
	inTx bool
	now  func() time.Time
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		mu: &sync.RWMutex{},
		data: &state{
			products:    make(map[uuid.UUID]models.Product),
			order:       make(map[uuid.UUID]int64),
			nextImageID: 1,
		},
		now: time.Now,
	}
}

func (r *ProductRepository) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.mu.Lock()
	return r.mu.Unlock
}

func (r *ProductRepository) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}

// Transaction holds the write lock for the whole of fn and restores the
// previous state when fn fails.
func (r *ProductRepository) Transaction(ctx context.Context, fn func(repo repository.ProductRepository) error) error {
	if r.inTx {
		return fn(r)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.data.clone()
	tx := &ProductRepository{mu: r.mu, data: r.data, inTx: true, now: r.now}
	if err := fn(tx); err != nil {
		*r.data = *snapshot
		return err
	}
	return nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	defer r.lock()()

	product.NormalizeSlug()
	if err := r.checkUnique(product); err != nil {
		return err
	}

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := r.now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.data.seq++
	r.data.order[product.ID] = r.data.seq

	for i := range product.Images {
		product.Images[i].ID = r.data.nextImageID
		product.Images[i].ProductID = product.ID
		r.data.nextImageID++
		r.data.images = append(r.data.images, product.Images[i])
	}

	stored := *product
	stored.Images = nil
	r.data.products[product.ID] = stored
	return nil
}

func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	defer r.lock()()

	existing, ok := r.data.products[product.ID]
	if !ok {
		return repository.ErrNotFound
	}

	product.NormalizeSlug()
	if err := r.checkUnique(product); err != nil {
		return err
	}

	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = r.now()

	for i := range product.Images {
		if product.Images[i].ID != 0 {
			continue
		}
		product.Images[i].ID = r.data.nextImageID
		product.Images[i].ProductID = product.ID
		r.data.nextImageID++
		r.data.images = append(r.data.images, product.Images[i])
	}

	stored := *product
	stored.Images = nil
	r.data.products[product.ID] = stored
	return nil
}

func (r *ProductRepository) DeleteImages(ctx context.Context, productID uuid.UUID) error {
	defer r.lock()()

	r.data.images = r.imagesExcept(productID)
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	defer r.lock()()

	if _, ok := r.data.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.data.products, id)
	delete(r.data.order, id)
	r.data.images = r.imagesExcept(id)
	return nil
}

func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	defer r.lock()()

	r.data.products = make(map[uuid.UUID]models.Product)
	r.data.order = make(map[uuid.UUID]int64)
	r.data.images = nil
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	defer r.rlock()()

	p, ok := r.data.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.withImages(p), nil
}

func (r *ProductRepository) FindByTitleOrSlug(ctx context.Context, title, slug string) (*models.Product, error) {
	defer r.rlock()()

	for _, p := range r.ordered() {
		if strings.ToUpper(p.Title) == title || p.Slug == slug {
			return r.withImages(p), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]models.Product, error) {
	defer r.rlock()()

	all := r.ordered()
	products := []models.Product{}
	for i := offset; i < len(all) && len(products) < limit; i++ {
		products = append(products, *r.withImages(all[i]))
	}
	return products, nil
}

func (r *ProductRepository) Ping(ctx context.Context) error {
	return nil
}

// ImageCount returns how many image rows reference productID.
func (r *ProductRepository) ImageCount(productID uuid.UUID) int {
	defer r.rlock()()

	n := 0
	for _, img := range r.data.images {
		if img.ProductID == productID {
			n++
		}
	}
	return n
}

func (r *ProductRepository) checkUnique(product *models.Product) error {
	for id, other := range r.data.products {
		if id == product.ID {
			continue
		}
		if other.Title == product.Title {
			return &repository.DuplicateError{Detail: fmt.Sprintf("Key (title)=(%s) already exists.", product.Title)}
		}
		if other.Slug == product.Slug {
			return &repository.DuplicateError{Detail: fmt.Sprintf("Key (slug)=(%s) already exists.", product.Slug)}
		}
	}
	return nil
}

func (r *ProductRepository) withImages(p models.Product) *models.Product {
	p.Images = []models.ProductImage{}
	for _, img := range r.data.images {
		if img.ProductID == p.ID {
			p.Images = append(p.Images, img)
		}
	}
	sort.Slice(p.Images, func(i, j int) bool { return p.Images[i].ID < p.Images[j].ID })
	return &p
}

func (r *ProductRepository) imagesExcept(productID uuid.UUID) []models.ProductImage {
	kept := r.data.images[:0:0]
	for _, img := range r.data.images {
		if img.ProductID != productID {
			kept = append(kept, img)
		}
	}
	return kept
}

func (r *ProductRepository) ordered() []models.Product {
	all := make([]models.Product, 0, len(r.data.products))
	for _, p := range r.data.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		return r.data.order[all[i].ID] < r.data.order[all[j].ID]
	})
	return all
}
