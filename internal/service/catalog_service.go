package service

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"aurelia-jewels/internal/domain"
	"aurelia-jewels/internal/repository"
)

// SortOrder represents the sort direction
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// Supported sort keys for product listings.
const (
	OrderByCreatedAt = "createdAt"
	OrderByPrice     = "price"
	OrderByName      = "name"
)

// minSearchLength guards against overly broad single-character scans.
const minSearchLength = 2

// ListOptions are the validated query options for ListProducts. All filters
// are optional; nil pointer fields mean "not supplied".
type ListOptions struct {
	CategorySlug string
	MetalType    string
	MinPrice     *float64 `validate:"omitempty,gte=0"`
	MaxPrice     *float64 `validate:"omitempty,gte=0"`
	Featured     *bool
	IsNewArrival *bool
	Page         int
	Limit        int
	OrderBy      string
	Order        SortOrder
}

// CategoryWithCount is a category annotated with the number of products that
// belong to it.
type CategoryWithCount struct {
	*domain.Category
	ProductCount int `json:"productCount"`
}

// ProductPage is the paginated result envelope for ListProducts.
type ProductPage struct {
	Products   []*domain.Product `json:"products"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// SearchResult holds full-search matches. Total counts every match, even when
// the product list is capped.
type SearchResult struct {
	Products []*domain.Product `json:"products"`
	Total    int               `json:"total"`
}

// Suggestion is the minimal product projection returned for search-as-you-type.
type Suggestion struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

// Limits carries the default result sizes for each catalog operation.
type Limits struct {
	PageSize        int
	FeaturedLimit   int
	RelatedLimit    int
	SearchLimit     int
	SuggestionLimit int
}

// DefaultLimits mirrors the storefront defaults.
func DefaultLimits() Limits {
	return Limits{
		PageSize:        12,
		FeaturedLimit:   8,
		RelatedLimit:    4,
		SearchLimit:     20,
		SuggestionLimit: 5,
	}
}

// CatalogService computes derived views over the catalog store. All
// operations are pure reads: no I/O, no logging, and an empty result is never
// an error. The only error conditions are the store's not-found sentinels.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]*CategoryWithCount, error)
	CategoryDetail(ctx context.Context, slug string) (*CategoryWithCount, error)
	ProductDetail(ctx context.Context, slug string) (*domain.Product, error)
	ListProducts(ctx context.Context, opts ListOptions) (*ProductPage, error)
	FeaturedProducts(ctx context.Context, limit int) ([]*domain.Product, error)
	NewArrivals(ctx context.Context, limit int) ([]*domain.Product, error)
	RelatedProducts(ctx context.Context, productID, categoryID, limit int) ([]*domain.Product, error)
	Search(ctx context.Context, query string, limit int) (*SearchResult, error)
	SearchSuggestions(ctx context.Context, query string, limit int) ([]*Suggestion, error)
}

type catalogService struct {
	store  repository.CatalogStore
	limits Limits
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(store repository.CatalogStore, limits Limits) CatalogService {
	defaults := DefaultLimits()
	if limits.PageSize <= 0 {
		limits.PageSize = defaults.PageSize
	}
	if limits.FeaturedLimit <= 0 {
		limits.FeaturedLimit = defaults.FeaturedLimit
	}
	if limits.RelatedLimit <= 0 {
		limits.RelatedLimit = defaults.RelatedLimit
	}
	if limits.SearchLimit <= 0 {
		limits.SearchLimit = defaults.SearchLimit
	}
	if limits.SuggestionLimit <= 0 {
		limits.SuggestionLimit = defaults.SuggestionLimit
	}
	return &catalogService{store: store, limits: limits}
}

// ListCategories returns every category with its product count.
func (s *catalogService) ListCategories(ctx context.Context) ([]*CategoryWithCount, error) {
	categories := s.store.Categories(ctx)
	products := s.store.Products(ctx)

	counts := make(map[int]int, len(categories))
	for _, p := range products {
		counts[p.CategoryID]++
	}

	out := make([]*CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, &CategoryWithCount{Category: c, ProductCount: counts[c.ID]})
	}
	return out, nil
}

// CategoryDetail returns the category matching slug with its product count.
func (s *catalogService) CategoryDetail(ctx context.Context, slug string) (*CategoryWithCount, error) {
	category, err := s.store.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, p := range s.store.Products(ctx) {
		if p.CategoryID == category.ID {
			count++
		}
	}
	return &CategoryWithCount{Category: category, ProductCount: count}, nil
}

// ProductDetail returns the full product matching slug.
func (s *catalogService) ProductDetail(ctx context.Context, slug string) (*domain.Product, error) {
	return s.store.ProductBySlug(ctx, slug)
}

// ListProducts applies every supplied filter conjunctively, sorts the result
// with a stable order, and slices out the requested page. Stability is a
// correctness property here: callers rely on deterministic pagination across
// requests with the same parameters.
func (s *catalogService) ListProducts(ctx context.Context, opts ListOptions) (*ProductPage, error) {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = s.limits.PageSize
	}

	filtered := []*domain.Product{}
	for _, p := range s.store.Products(ctx) {
		if matchesFilters(p, opts) {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, opts.OrderBy, opts.Order)

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &ProductPage{
		Products:   filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// FeaturedProducts returns the newest featured products, capped at limit.
func (s *catalogService) FeaturedProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = s.limits.FeaturedLimit
	}
	return s.flagged(ctx, limit, func(p *domain.Product) bool { return p.Featured }), nil
}

// NewArrivals returns the newest new-arrival products, capped at limit.
func (s *catalogService) NewArrivals(ctx context.Context, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = s.limits.FeaturedLimit
	}
	return s.flagged(ctx, limit, func(p *domain.Product) bool { return p.IsNewArrival }), nil
}

func (s *catalogService) flagged(ctx context.Context, limit int, keep func(*domain.Product) bool) []*domain.Product {
	out := []*domain.Product{}
	for _, p := range s.store.Products(ctx) {
		if keep(p) {
			out = append(out, p)
		}
	}
	sortProducts(out, OrderByCreatedAt, SortOrderDesc)
	return capped(out, limit)
}

// RelatedProducts returns the newest products sharing categoryID, excluding
// the product itself.
func (s *catalogService) RelatedProducts(ctx context.Context, productID, categoryID, limit int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = s.limits.RelatedLimit
	}
	out := []*domain.Product{}
	for _, p := range s.store.Products(ctx) {
		if p.CategoryID == categoryID && p.ID != productID {
			out = append(out, p)
		}
	}
	sortProducts(out, OrderByCreatedAt, SortOrderDesc)
	return capped(out, limit), nil
}

// Search performs a case-insensitive OR-semantic match of the trimmed query
// against product name, description, tags (exact membership), metal type, and
// category name. Queries shorter than two characters yield an empty result
// with Total 0; that is a guard, not an error.
func (s *catalogService) Search(ctx context.Context, query string, limit int) (*SearchResult, error) {
	if limit <= 0 {
		limit = s.limits.SearchLimit
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < minSearchLength {
		return &SearchResult{Products: []*domain.Product{}, Total: 0}, nil
	}

	matched := []*domain.Product{}
	for _, p := range s.store.Products(ctx) {
		if matchesSearch(p, q) {
			matched = append(matched, p)
		}
	}
	sortProducts(matched, OrderByCreatedAt, SortOrderDesc)

	return &SearchResult{Products: capped(matched, limit), Total: len(matched)}, nil
}

// SearchSuggestions matches only product name or tag substrings and sorts
// alphabetically by name: suggestions prioritize predictable ordering over
// freshness.
func (s *catalogService) SearchSuggestions(ctx context.Context, query string, limit int) ([]*Suggestion, error) {
	if limit <= 0 {
		limit = s.limits.SuggestionLimit
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < minSearchLength {
		return []*Suggestion{}, nil
	}

	matched := []*domain.Product{}
	for _, p := range s.store.Products(ctx) {
		if matchesSuggestion(p, q) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})
	matched = capped(matched, limit)

	out := make([]*Suggestion, 0, len(matched))
	for _, p := range matched {
		out = append(out, &Suggestion{
			ID:    p.ID,
			Name:  p.Name,
			Slug:  p.Slug,
			Image: p.PrimaryImage(),
			Price: p.Price,
		})
	}
	return out, nil
}

// matchesFilters reports whether p satisfies every supplied filter (AND
// semantics).
func matchesFilters(p *domain.Product, opts ListOptions) bool {
	if opts.CategorySlug != "" && (p.Category == nil || p.Category.Slug != opts.CategorySlug) {
		return false
	}
	if opts.MetalType != "" && p.MetalType != opts.MetalType {
		return false
	}
	if opts.MinPrice != nil && p.Price < *opts.MinPrice {
		return false
	}
	if opts.MaxPrice != nil && p.Price > *opts.MaxPrice {
		return false
	}
	if opts.Featured != nil && p.Featured != *opts.Featured {
		return false
	}
	if opts.IsNewArrival != nil && p.IsNewArrival != *opts.IsNewArrival {
		return false
	}
	return true
}

// matchesSearch reports whether p matches q on any searchable field (OR
// semantics, the inverse of matchesFilters). Tags are matched by exact
// membership, not substring.
func matchesSearch(p *domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if tag == q {
			return true
		}
	}
	if strings.Contains(strings.ToLower(p.MetalType), q) {
		return true
	}
	if p.Category != nil && strings.Contains(strings.ToLower(p.Category.Name), q) {
		return true
	}
	return false
}

// matchesSuggestion is the narrower match used for search-as-you-type: name
// substring or tag substring only.
func matchesSuggestion(p *domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(tag, q) {
			return true
		}
	}
	return false
}

// sortProducts sorts in place by the given key and direction using a stable
// sort so equal keys preserve pre-sort relative order. Unknown keys fall back
// to createdAt; unknown directions fall back to descending.
func sortProducts(products []*domain.Product, orderBy string, order SortOrder) {
	var less func(a, b *domain.Product) bool
	switch orderBy {
	case OrderByPrice:
		less = func(a, b *domain.Product) bool { return a.Price < b.Price }
	case OrderByName:
		less = func(a, b *domain.Product) bool { return a.Name < b.Name }
	case OrderByCreatedAt:
		less = func(a, b *domain.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		less = func(a, b *domain.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}

	asc := order == SortOrderAsc
	sort.SliceStable(products, func(i, j int) bool {
		if asc {
			return less(products[i], products[j])
		}
		// Swapping the operands inverts the order without breaking stability:
		// equal keys report false either way.
		return less(products[j], products[i])
	})
}

func capped(products []*domain.Product, limit int) []*domain.Product {
	if len(products) > limit {
		return products[:limit]
	}
	return products
}
