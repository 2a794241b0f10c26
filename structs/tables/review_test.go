package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewStarDisplay(t *testing.T) {
	tests := []struct {
		rating   int
		expected string
	}{
		{5, "★★★★★"},
		{3, "★★★☆☆"},
		{1, "★☆☆☆☆"},
		{0, "☆☆☆☆☆"},
		{-2, "☆☆☆☆☆"},
		{9, "★★★★★"},
	}

	for _, tt := range tests {
		r := &Review{Rating: tt.rating}
		assert.Equal(t, tt.expected, r.StarDisplay())
	}
}
