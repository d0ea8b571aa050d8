package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"aurelia-jewels/internal/domain"
)

func fixtureCategory(id int, name, slug string) *domain.Category {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Category{ID: id, Name: name, Slug: slug, CreatedAt: created, UpdatedAt: created}
}

func fixtureProduct(id int, name, slug string, categoryID int) *domain.Product {
	created := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Product{
		ID:         id,
		Name:       name,
		Slug:       slug,
		Price:      1000,
		CategoryID: categoryID,
		MetalType:  "Silver",
		Images:     []string{"https://example.com/" + slug + ".jpg"},
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}

func TestNewCatalogStoreResolvesCategories(t *testing.T) {
	categories := []*domain.Category{fixtureCategory(1, "Rings", "rings")}
	products := []*domain.Product{fixtureProduct(1, "Gold Band", "gold-band", 1)}

	store, err := NewCatalogStore(categories, products)
	if err != nil {
		t.Fatalf("NewCatalogStore: %v", err)
	}

	p, err := store.ProductBySlug(context.Background(), "gold-band")
	if err != nil {
		t.Fatalf("ProductBySlug: %v", err)
	}
	if p.Category == nil || p.Category.Slug != "rings" {
		t.Fatalf("expected resolved category rings, got %+v", p.Category)
	}
}

func TestNewCatalogStoreRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name       string
		categories []*domain.Category
		products   []*domain.Product
		wantErr    string
	}{
		{
			name: "duplicate category slug",
			categories: []*domain.Category{
				fixtureCategory(1, "Rings", "rings"),
				fixtureCategory(2, "Other Rings", "rings"),
			},
			wantErr: "duplicate category slug",
		},
		{
			name: "duplicate category id",
			categories: []*domain.Category{
				fixtureCategory(1, "Rings", "rings"),
				fixtureCategory(1, "Necklaces", "necklaces"),
			},
			wantErr: "duplicate category id",
		},
		{
			name:       "duplicate product slug",
			categories: []*domain.Category{fixtureCategory(1, "Rings", "rings")},
			products: []*domain.Product{
				fixtureProduct(1, "Gold Band", "gold-band", 1),
				fixtureProduct(2, "Other Band", "gold-band", 1),
			},
			wantErr: "duplicate product slug",
		},
		{
			name:       "dangling category reference",
			categories: []*domain.Category{fixtureCategory(1, "Rings", "rings")},
			products:   []*domain.Product{fixtureProduct(1, "Gold Band", "gold-band", 99)},
			wantErr:    "unknown category id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogStore(tt.categories, tt.products)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLookupsReturnSentinelErrors(t *testing.T) {
	store, err := NewCatalogStore(
		[]*domain.Category{fixtureCategory(1, "Rings", "rings")},
		[]*domain.Product{fixtureProduct(1, "Gold Band", "gold-band", 1)},
	)
	if err != nil {
		t.Fatalf("NewCatalogStore: %v", err)
	}
	ctx := context.Background()

	if _, err := store.CategoryBySlug(ctx, "no-such-category"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if _, err := store.ProductBySlug(ctx, "no-such-product"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := store.CategoryByID(ctx, 42); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCollectionsPreserveInsertionOrder(t *testing.T) {
	categories := []*domain.Category{
		fixtureCategory(2, "Necklaces", "necklaces"),
		fixtureCategory(1, "Rings", "rings"),
	}
	products := []*domain.Product{
		fixtureProduct(5, "Pearl Strand", "pearl-strand", 2),
		fixtureProduct(3, "Gold Band", "gold-band", 1),
	}

	store, err := NewCatalogStore(categories, products)
	if err != nil {
		t.Fatalf("NewCatalogStore: %v", err)
	}
	ctx := context.Background()

	got := store.Categories(ctx)
	if got[0].Slug != "necklaces" || got[1].Slug != "rings" {
		t.Fatalf("categories out of order: %v, %v", got[0].Slug, got[1].Slug)
	}
	gotProducts := store.Products(ctx)
	if gotProducts[0].Slug != "pearl-strand" || gotProducts[1].Slug != "gold-band" {
		t.Fatalf("products out of order: %v, %v", gotProducts[0].Slug, gotProducts[1].Slug)
	}
}

func TestSeedDataSatisfiesInvariants(t *testing.T) {
	store, err := NewCatalogStore(domain.SeedCategories(), domain.SeedProducts())
	if err != nil {
		t.Fatalf("seed data failed store validation: %v", err)
	}
	ctx := context.Background()

	if got := len(store.Categories(ctx)); got != 7 {
		t.Fatalf("expected 7 categories, got %d", got)
	}
	if got := len(store.Products(ctx)); got != 28 {
		t.Fatalf("expected 28 products, got %d", got)
	}

	metalTypes := make(map[string]bool, len(domain.MetalTypes))
	for _, m := range domain.MetalTypes {
		metalTypes[m] = true
	}

	for _, p := range store.Products(ctx) {
		if p.Category == nil {
			t.Errorf("product %q has no resolved category", p.Slug)
		}
		if !metalTypes[p.MetalType] {
			t.Errorf("product %q has unknown metal type %q", p.Slug, p.MetalType)
		}
		if len(p.Images) == 0 {
			t.Errorf("product %q has no images", p.Slug)
		}
		if p.Price < 0 {
			t.Errorf("product %q has negative price", p.Slug)
		}
		for _, tag := range p.Tags {
			if tag != strings.ToLower(tag) {
				t.Errorf("product %q has non-lowercase tag %q", p.Slug, tag)
			}
		}
	}
}
