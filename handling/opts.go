package handling

import (
	"net/http"
	"strconv"
	"strings"
	"teentops_server/services"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}
	var err error
	var valInt int
	var valBool bool

	// Parse pagination parameters
	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	if category := query.Get("category"); category != "" {
		opts.CategorySlug = category
	}

	if featured := query.Get("featured"); featured != "" {
		if valBool, err = strconv.ParseBool(featured); err != nil {
			return nil, err
		}
		opts.Featured = &valBool
	}

	// Parse price filters (inclusive bounds, in cents)
	if minPrice := query.Get("min_price"); minPrice != "" {
		val, err := strconv.ParseUint(minPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MinPrice = &val
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		val, err := strconv.ParseUint(maxPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MaxPrice = &val
	}

	// Parse sorting parameters
	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	return opts, nil
}
