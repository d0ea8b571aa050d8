package transport

import (
	"errors"
	"net/http"
	"strconv"

	"aurelia-jewels/internal/middleware"
	"aurelia-jewels/internal/repository"
	"aurelia-jewels/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Search modes accepted by the search endpoint.
const (
	searchModeFull        = "full"
	searchModeSuggestions = "suggestions"
)

// CatalogHandler bridges query-string parameters into the validated option
// shapes the catalog service expects. It is the only component aware of the
// external request shape; it never filters or sorts itself.
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// RegisterRoutes registers all catalog routes. searchLimiter, when non-nil,
// wraps the search endpoint; suggestion lookups fire on every keystroke.
func (h *CatalogHandler) RegisterRoutes(r chi.Router, searchLimiter func(http.Handler) http.Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/categories/{slug}", h.GetCategory)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/featured", h.FeaturedProducts)
			r.Get("/new-arrivals", h.NewArrivals)
			r.Get("/{slug}", h.GetProduct)
			r.Get("/{slug}/related", h.RelatedProducts)
		})

		r.Group(func(r chi.Router) {
			if searchLimiter != nil {
				r.Use(searchLimiter)
			}
			r.Get("/search", h.Search)
		})
	})
}

// ListCategories handles GET /api/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogService.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, categories)
}

// GetCategory handles GET /api/categories/{slug}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	category, err := h.catalogService.CategoryDetail(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "category not found")
			return
		}
		h.logger.Error("Failed to get category", zap.String("slug", slug), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch category")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, category)
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	opts := service.ListOptions{
		CategorySlug: r.URL.Query().Get("category"),
		MetalType:    r.URL.Query().Get("metal"),
		MinPrice:     queryFloat(r, "minPrice"),
		MaxPrice:     queryFloat(r, "maxPrice"),
		Featured:     queryBool(r, "featured"),
		IsNewArrival: queryBool(r, "newArrival"),
		Page:         queryInt(r, "page"),
		Limit:        queryInt(r, "limit"),
		OrderBy:      r.URL.Query().Get("orderBy"),
		Order:        service.SortOrder(r.URL.Query().Get("order")),
	}

	if err := middleware.ValidateRequest(opts); err != nil {
		h.logger.Debug("Product listing validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid query parameters")
		return
	}

	page, err := h.catalogService.ListProducts(r.Context(), opts)
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// GetProduct handles GET /api/products/{slug}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.catalogService.ProductDetail(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to get product", zap.String("slug", slug), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch product")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// FeaturedProducts handles GET /api/products/featured
func (h *CatalogHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.FeaturedProducts(r.Context(), queryInt(r, "limit"))
	if err != nil {
		h.logger.Error("Failed to list featured products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch featured products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// NewArrivals handles GET /api/products/new-arrivals
func (h *CatalogHandler) NewArrivals(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.NewArrivals(r.Context(), queryInt(r, "limit"))
	if err != nil {
		h.logger.Error("Failed to list new arrivals", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch new arrivals")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, products)
}

// RelatedProducts handles GET /api/products/{slug}/related
func (h *CatalogHandler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.catalogService.ProductDetail(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("Failed to get product for related lookup", zap.String("slug", slug), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch related products")
		return
	}

	related, err := h.catalogService.RelatedProducts(r.Context(), product.ID, product.CategoryID, queryInt(r, "limit"))
	if err != nil {
		h.logger.Error("Failed to list related products", zap.String("slug", slug), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to fetch related products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, related)
}

// Search handles GET /api/search. mode=suggestions returns the lightweight
// suggestion projection as a bare array; anything else runs the full search.
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	mode := r.URL.Query().Get("mode")
	limit := queryInt(r, "limit")

	if mode == searchModeSuggestions {
		suggestions, err := h.catalogService.SearchSuggestions(r.Context(), q, limit)
		if err != nil {
			h.logger.Error("Suggestion search failed", zap.Error(err))
			middleware.RespondWithError(w, http.StatusInternalServerError, "search failed")
			return
		}
		middleware.RespondWithJSON(w, http.StatusOK, suggestions)
		return
	}

	result, err := h.catalogService.Search(r.Context(), q, limit)
	if err != nil {
		h.logger.Error("Search failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "search failed")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, result)
}

// queryFloat parses a numeric query parameter; unparseable or absent values
// are treated as not supplied.
func queryFloat(r *http.Request, name string) *float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// queryInt parses an integer query parameter; unparseable or absent values
// yield zero, which downstream code replaces with its default.
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

// queryBool treats the literal "true" as true and anything else as not
// supplied, matching the storefront's filter toggles.
func queryBool(r *http.Request, name string) *bool {
	if r.URL.Query().Get(name) != "true" {
		return nil
	}
	v := true
	return &v
}
