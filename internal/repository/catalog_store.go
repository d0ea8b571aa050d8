package repository

import (
	"context"
	"errors"
	"fmt"

	"aurelia-jewels/internal/domain"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

// CatalogStore defines read-only access to the catalog records. The dataset
// is fixed at construction time; there is no create, update, or delete path.
type CatalogStore interface {
	Categories(ctx context.Context) []*domain.Category
	Products(ctx context.Context) []*domain.Product
	CategoryByID(ctx context.Context, id int) (*domain.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

type catalogStore struct {
	categories []*domain.Category
	products   []*domain.Product

	// Lookup indexes over the same records; the slices above stay the single
	// source of truth.
	categoriesByID   map[int]*domain.Category
	categoriesBySlug map[string]*domain.Category
	productsBySlug   map[string]*domain.Product
}

// NewCatalogStore builds an in-memory catalog store over the given records.
// It validates that ids and slugs are unique per entity type and that every
// product's CategoryID resolves, and wires each product's Category reference.
// The store is immutable after construction, so it is safe for concurrent
// readers without locking.
func NewCatalogStore(categories []*domain.Category, products []*domain.Product) (CatalogStore, error) {
	s := &catalogStore{
		categories:       categories,
		products:         products,
		categoriesByID:   make(map[int]*domain.Category, len(categories)),
		categoriesBySlug: make(map[string]*domain.Category, len(categories)),
		productsBySlug:   make(map[string]*domain.Product, len(products)),
	}

	for _, c := range categories {
		if _, exists := s.categoriesByID[c.ID]; exists {
			return nil, fmt.Errorf("duplicate category id %d", c.ID)
		}
		if _, exists := s.categoriesBySlug[c.Slug]; exists {
			return nil, fmt.Errorf("duplicate category slug %q", c.Slug)
		}
		s.categoriesByID[c.ID] = c
		s.categoriesBySlug[c.Slug] = c
	}

	productIDs := make(map[int]struct{}, len(products))
	for _, p := range products {
		if _, exists := productIDs[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if _, exists := s.productsBySlug[p.Slug]; exists {
			return nil, fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		category, ok := s.categoriesByID[p.CategoryID]
		if !ok {
			return nil, fmt.Errorf("product %q references unknown category id %d", p.Slug, p.CategoryID)
		}
		p.Category = category
		productIDs[p.ID] = struct{}{}
		s.productsBySlug[p.Slug] = p
	}

	return s, nil
}

// Categories returns all categories in insertion order.
func (s *catalogStore) Categories(_ context.Context) []*domain.Category {
	out := make([]*domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Products returns all products in insertion order.
func (s *catalogStore) Products(_ context.Context) []*domain.Product {
	out := make([]*domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *catalogStore) CategoryByID(_ context.Context, id int) (*domain.Category, error) {
	category, ok := s.categoriesByID[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *catalogStore) CategoryBySlug(_ context.Context, slug string) (*domain.Category, error) {
	category, ok := s.categoriesBySlug[slug]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *catalogStore) ProductBySlug(_ context.Context, slug string) (*domain.Product, error) {
	product, ok := s.productsBySlug[slug]
	if !ok {
		return nil, ErrProductNotFound
	}
	return product, nil
}
