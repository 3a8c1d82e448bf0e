package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Men's Chill Crew Neck Sweatshirt", "mens-chill-crew-neck-sweatshirt"},
		{"  Kids  Cybertruck__Tee ", "kids-cybertruck-tee"},
		{"ALREADY-a-slug", "already-a-slug"},
		{"Raven Lightweight Zip-Up Bomber!", "raven-lightweight-zip-up-bomber"},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestNormalizeSlug(t *testing.T) {
	p := &Product{Title: "Women's Cropped Puffer Jacket"}
	p.NormalizeSlug()
	assert.Equal(t, "womens-cropped-puffer-jacket", p.Slug)

	p = &Product{Title: "Anything", Slug: "Custom Slug"}
	p.NormalizeSlug()
	assert.Equal(t, "custom-slug", p.Slug)
}

func TestImageURLsKeepsOrder(t *testing.T) {
	id := uuid.New()
	p := &Product{ID: id, Images: NewProductImages(id, []string{"b.jpg", "a.jpg", "c.jpg"})}

	assert.Equal(t, []string{"b.jpg", "a.jpg", "c.jpg"}, p.ImageURLs())
	for _, img := range p.Images {
		assert.Equal(t, id, img.ProductID)
	}
	assert.Empty(t, (&Product{}).ImageURLs())
	assert.NotNil(t, (&Product{}).ImageURLs())
}

func TestEnums(t *testing.T) {
	assert.True(t, GenderKid.IsValid())
	assert.False(t, Gender("robot").IsValid())
	assert.True(t, Size("XXL").IsValid())
	assert.False(t, Size("xxl").IsValid())
}
