// internal/models/product.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string         `json:"title" gorm:"type:text;not null;uniqueIndex"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null;default:0"`
	Description *string        `json:"description" gorm:"type:text"`
	Slug        string         `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	Sizes       pq.StringArray `json:"sizes" gorm:"type:text[];not null;default:'{}'"`
	Gender      Gender         `json:"gender" gorm:"type:varchar(10);not null"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[];not null;default:'{}'"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	// Relationships
	Images []ProductImage `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
}

// BeforeSave keeps the slug consistent with the title: a missing slug is
// derived from the title and every slug is stored normalized.
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.NormalizeSlug()
	return nil
}

func (p *Product) NormalizeSlug() {
	if strings.TrimSpace(p.Slug) == "" {
		p.Slug = p.Title
	}
	p.Slug = Slugify(p.Slug)
}

// ImageURLs flattens the owned images into their URLs, keeping order.
func (p *Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

func NewProductImages(productID uuid.UUID, urls []string) []ProductImage {
	images := make([]ProductImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, ProductImage{URL: url, ProductID: productID})
	}
	return images
}
