package services

import (
	"context"
	"fmt"
	"teentops_server/database"
	"teentops_server/lib"
	"teentops_server/structs"
	"teentops_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CatalogService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCatalogService(logger *gecho.Logger, db *database.DB) *CatalogService {
	return &CatalogService{
		logger: logger,
		db:     db,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	IsActive     *bool   `json:"is_active,omitempty"`  // Filter by active status (nil = active only)
	Featured     *bool   `json:"featured,omitempty"`   // Filter by featured flag
	MinPrice     *uint64 `json:"min_price,omitempty"`  // Minimum base price in cents (inclusive)
	MaxPrice     *uint64 `json:"max_price,omitempty"`  // Maximum base price in cents (inclusive)
	SearchTerm   string  `json:"search_term,omitempty"`
	CategorySlug string  `json:"category,omitempty"`

	// Sorting
	SortBy        string `json:"sort_by"`        // Field to sort by (created_at, name, base_price)
	SortDirection string `json:"sort_direction"` // ASC or DESC

	// Performance
	Timeout time.Duration `json:"-"` // Query timeout (not exposed in JSON)
}

// ProductView is a product enriched with the derived catalog fields.
// Derived values are recomputed from the loaded variants on every read.
type ProductView struct {
	tables.Product
	MinPrice        uint64          `json:"min_price"`
	MaxPrice        uint64          `json:"max_price"`
	AvailableSizes  []structs.Size  `json:"available_sizes"`
	AvailableColors []structs.Color `json:"available_colors"`
	MainImage       string          `json:"main_image"`
}

// NewProductView computes the derived fields for a product
func NewProductView(p tables.Product) ProductView {
	return ProductView{
		Product:         p,
		MinPrice:        p.MinPrice(),
		MaxPrice:        p.MaxPrice(),
		AvailableSizes:  p.AvailableSizes(),
		AvailableColors: p.AvailableColors(),
		MainImage:       p.MainImage(),
	}
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []ProductView       `json:"products"`
	Pagination database.Pagination `json:"pagination"`
	QueryTime  time.Duration       `json:"query_time"`
}

// GetAllProducts retrieves products with filtering, pagination, and derived fields
func (cs *CatalogService) GetAllProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	cs.applyDefaultOptions(opts)

	if err := cs.validateOptions(opts); err != nil {
		cs.logger.Error("Invalid product list options", gecho.Field("error", err), gecho.Field("options", opts))
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	queryCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		queryCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	query := database.Query[tables.Product](cs.db).
		Relation("Category").
		Relation("Images").
		Relation("Variants")

	query = cs.applyFilters(query, opts)
	query = cs.applySorting(query, opts)

	result, err := database.Paginate(query, queryCtx, opts.Page, opts.PageSize)
	if err != nil {
		cs.logger.Error("Failed to fetch products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("pageSize", opts.PageSize),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	views := make([]ProductView, len(result.Data))
	for i, product := range result.Data {
		views[i] = NewProductView(product)
	}

	cs.logger.Debug("Products fetched successfully",
		gecho.Field("count", len(views)),
		gecho.Field("total", result.Pagination.Total),
		gecho.Field("page", result.Pagination.Page),
		gecho.Field("duration", time.Since(startTime)),
	)

	return &ProductListResult{
		Products:   views,
		Pagination: result.Pagination,
		QueryTime:  time.Since(startTime),
	}, nil
}

// GetFeaturedProducts is a convenience method for the featured product listing
func (cs *CatalogService) GetFeaturedProducts(ctx context.Context, page, pageSize int) (*ProductListResult, error) {
	featured := true
	return cs.GetAllProducts(ctx, &ProductListOptions{
		Page:     page,
		PageSize: pageSize,
		Featured: &featured,
	})
}

// GetProductBySlug retrieves a single active product by slug with its category,
// images, variants, and approved reviews
func (cs *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*ProductView, error) {
	startTime := time.Now()

	product, err := database.Query[tables.Product](cs.db).
		Where("p.slug", slug).
		Where("p.is_active", true).
		Relation("Category").
		Relation("Images").
		Relation("Variants").
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch product by slug",
			gecho.Field("slug", slug),
			gecho.Field("error", err),
			gecho.Field("duration", time.Since(startTime)),
		)
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	if product == nil {
		return nil, lib.ErrNotFound
	}

	// Approved reviews only; fetched separately so moderation state never
	// leaks hidden reviews into the detail payload
	reviews, err := database.Query[tables.Review](cs.db).
		Where("r.product_id", product.ID).
		Where("r.is_approved", true).
		OrderBy("r.created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product reviews: %w", err)
	}
	product.Reviews = reviews

	view := NewProductView(*product)

	cs.logger.Debug("Product fetched by slug",
		gecho.Field("slug", slug),
		gecho.Field("duration", time.Since(startTime)),
	)
	return &view, nil
}

// GetProductVariants retrieves the active variants of a product.
// Returns lib.ErrNotFound when the product does not exist.
func (cs *CatalogService) GetProductVariants(ctx context.Context, productID uuid.UUID) ([]tables.ProductVariant, error) {
	exists, err := database.Query[tables.Product](cs.db).
		Where("p.id", productID).
		Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check product existence: %w", err)
	}
	if !exists {
		return nil, lib.ErrNotFound
	}

	variants, err := database.Query[tables.ProductVariant](cs.db).
		Where("pv.product_id", productID).
		Where("pv.is_active", true).
		OrderBy("pv.sku", database.ASC).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product variants: %w", err)
	}

	return variants, nil
}

// GetAllCategories lists all categories ordered by name
func (cs *CatalogService) GetAllCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		OrderBy("c.name", database.ASC).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch categories", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

// applyDefaultOptions sets default values for unspecified options
func (cs *CatalogService) applyDefaultOptions(opts *ProductListOptions) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 20
	}
	if opts.PageSize > 100 {
		opts.PageSize = 100 // Max page size for performance
	}
	if opts.SortBy == "" {
		opts.SortBy = "created_at"
	}
	if opts.SortDirection == "" {
		opts.SortDirection = "DESC"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
}

// validateOptions validates the provided options
func (cs *CatalogService) validateOptions(opts *ProductListOptions) error {
	validSortFields := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"base_price": true,
		"name":       true,
	}
	if !validSortFields[opts.SortBy] {
		return fmt.Errorf("invalid sort field: %s", opts.SortBy)
	}

	if opts.SortDirection != "ASC" && opts.SortDirection != "DESC" {
		return fmt.Errorf("invalid sort direction: %s (must be ASC or DESC)", opts.SortDirection)
	}

	if opts.MinPrice != nil && opts.MaxPrice != nil && *opts.MinPrice > *opts.MaxPrice {
		return fmt.Errorf("min_price cannot be greater than max_price")
	}

	return nil
}

// applyFilters applies all filter conditions to the query
func (cs *CatalogService) applyFilters(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	// Public listings only see active products unless told otherwise
	if opts.IsActive != nil {
		query = query.Where("p.is_active", *opts.IsActive)
	} else {
		query = query.Where("p.is_active", true)
	}

	if opts.Featured != nil {
		query = query.Where("p.featured", *opts.Featured)
	}

	// Inclusive price bounds on the base price
	if opts.MinPrice != nil {
		query = query.WhereOp("p.base_price", ">=", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		query = query.WhereOp("p.base_price", "<=", *opts.MaxPrice)
	}

	// Case-insensitive substring search over name, description, and category name
	if opts.SearchTerm != "" {
		searchPattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw(
			"(p.name ILIKE ? OR p.description ILIKE ? OR p.category_id IN (SELECT id FROM categories WHERE name ILIKE ?))",
			searchPattern, searchPattern, searchPattern,
		)
	}

	if opts.CategorySlug != "" {
		query = query.WhereRaw(
			"p.category_id IN (SELECT id FROM categories WHERE slug = ?)",
			opts.CategorySlug,
		)
	}

	return query
}

// applySorting applies sorting to the query
func (cs *CatalogService) applySorting(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	var direction database.OrderDirection
	if opts.SortDirection == "ASC" {
		direction = database.ASC
	} else {
		direction = database.DESC
	}

	query = query.OrderBy("p."+opts.SortBy, direction)

	// Secondary sort by ID for consistent ordering
	query = query.OrderBy("p.id", database.ASC)

	return query
}
