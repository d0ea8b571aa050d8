package domain

import "time"

// MetalTypes is the fixed set of metal finishes a product can carry.
var MetalTypes = []string{
	"Yellow Gold",
	"White Gold",
	"Rose Gold",
	"Platinum",
	"Silver",
	"Gold Plated",
}

// Category represents a storefront category
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Image       string    `json:"image"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Product represents a catalog product. Category is resolved from CategoryID
// when the catalog store is built and is never nil afterwards.
type Product struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	CategoryID   int       `json:"categoryId"`
	Category     *Category `json:"category,omitempty"`
	Tags         []string  `json:"tags"`
	MetalType    string    `json:"metalType"`
	Images       []string  `json:"images"`
	Featured     bool      `json:"featured"`
	IsNewArrival bool      `json:"isNewArrival"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PrimaryImage returns the first image reference, or an empty string when the
// product has no images.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
