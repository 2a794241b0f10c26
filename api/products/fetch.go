package products

import (
	"errors"
	"net/http"
	"strconv"
	"teentops_server/handling"
	"teentops_server/lib"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// FetchAllProducts handles GET /products with filtering, pagination, and sorting
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := prm.catalogService.GetAllProducts(ctx, opts)
	if err != nil {
		prm.logger.Error("Failed to fetch products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
			"meta": map[string]any{
				"query_time_ms": result.QueryTime.Milliseconds(),
				"count":         len(result.Products),
			},
		}),
		gecho.Send(),
	)
}

// FetchFeaturedProducts handles GET /products/featured
func (prm *ProductRoutesManager) FetchFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := 1
	pageSize := 20

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if val, err := strconv.Atoi(pageStr); err == nil && val > 0 {
			page = val
		}
	}
	if pageSizeStr := r.URL.Query().Get("page_size"); pageSizeStr != "" {
		if val, err := strconv.Atoi(pageSizeStr); err == nil && val > 0 {
			pageSize = val
		}
	}

	result, err := prm.catalogService.GetFeaturedProducts(ctx, page, pageSize)
	if err != nil {
		prm.logger.Error("Failed to fetch featured products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetchFeatured"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// SearchProducts handles GET /products/search. Same machinery as the list
// endpoint; "q" is accepted as an alias for "search".
func (prm *ProductRoutesManager) SearchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		prm.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("error.invalidQueryParameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	if opts.SearchTerm == "" {
		opts.SearchTerm = r.URL.Query().Get("q")
	}

	if opts.SearchTerm == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.searchTermRequired"),
			gecho.Send(),
		)
		return
	}

	result, err := prm.catalogService.GetAllProducts(ctx, opts)
	if err != nil {
		prm.logger.Error("Failed to search products", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToSearch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
			"search":     opts.SearchTerm,
		}),
		gecho.Send(),
	)
}

// FetchCategories handles GET /products/categories
func (prm *ProductRoutesManager) FetchCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := prm.catalogService.GetAllCategories(r.Context())
	if err != nil {
		prm.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.categories.failedToFetch"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
		}),
		gecho.Send(),
	)
}

// FetchProductBySlug handles GET /products/{slug} for the product detail page
func (prm *ProductRoutesManager) FetchProductBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.slugRequired"),
			gecho.Send(),
		)
		return
	}

	product, err := prm.catalogService.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Failed to fetch product by slug", gecho.Field("slug", slug), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetchOne"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product": product,
		}),
		gecho.Send(),
	)
}

// FetchProductVariants handles GET /products/{id}/variants
func (prm *ProductRoutesManager) FetchProductVariants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.products.invalidProductId"),
			gecho.Send(),
		)
		return
	}

	variants, err := prm.catalogService.GetProductVariants(ctx, id)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			gecho.NotFound(w,
				gecho.WithMessage("error.products.notFound"),
				gecho.WithData(map[string]string{"product_id": id.String()}),
				gecho.Send(),
			)
			return
		}

		prm.logger.Error("Failed to fetch product variants", gecho.Field("id", id), gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("error.products.failedToFetchVariants"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"product_id": id,
			"variants":   variants,
		}),
		gecho.Send(),
	)
}
