// internal/models/common.go
package models

import (
	"regexp"
	"strings"
)

// Enums
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderKid    Gender = "kid"
	GenderUnisex Gender = "unisex"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderKid, GenderUnisex:
		return true
	}
	return false
}

type Size string

const (
	SizeXS   Size = "XS"
	SizeS    Size = "S"
	SizeM    Size = "M"
	SizeL    Size = "L"
	SizeXL   Size = "XL"
	SizeXXL  Size = "XXL"
	SizeXXXL Size = "XXXL"
)

var ValidSizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL, SizeXXXL}

func (s Size) IsValid() bool {
	for _, size := range ValidSizes {
		if s == size {
			return true
		}
	}
	return false
}

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s, drops apostrophes and joins the remaining
// alphanumeric runs with single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("'", "", "’", "").Replace(s)
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
