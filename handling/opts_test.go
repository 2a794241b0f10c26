package handling

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductListOptions(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/products?page=2&page_size=24&search=hoodie&category=hoodies&featured=true&min_price=1000&max_price=5000&sort_by=base_price&sort_direction=desc",
		nil)

	opts, err := ParseProductListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 24, opts.PageSize)
	assert.Equal(t, "hoodie", opts.SearchTerm)
	assert.Equal(t, "hoodies", opts.CategorySlug)

	require.NotNil(t, opts.Featured)
	assert.True(t, *opts.Featured)

	require.NotNil(t, opts.MinPrice)
	require.NotNil(t, opts.MaxPrice)
	assert.Equal(t, uint64(1000), *opts.MinPrice)
	assert.Equal(t, uint64(5000), *opts.MaxPrice)

	assert.Equal(t, "base_price", opts.SortBy)
	assert.Equal(t, "DESC", opts.SortDirection)
}

func TestParseProductListOptionsEmptyQuery(t *testing.T) {
	opts, err := ParseProductListOptions(httptest.NewRequest("GET", "/products", nil))
	require.NoError(t, err)

	assert.Zero(t, opts.Page)
	assert.Empty(t, opts.SearchTerm)
	assert.Nil(t, opts.Featured)
	assert.Nil(t, opts.MinPrice)
	assert.Nil(t, opts.MaxPrice)
}

func TestParseProductListOptionsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"page not a number", "/products?page=abc"},
		{"featured not a bool", "/products?featured=maybe"},
		{"negative min price", "/products?min_price=-100"},
		{"max price not a number", "/products?max_price=cheap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProductListOptions(httptest.NewRequest("GET", tt.url, nil))
			assert.Error(t, err)
		})
	}
}
