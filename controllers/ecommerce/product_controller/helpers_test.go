package product_controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStorefrontOrderClause(t *testing.T) {
	cases := []struct {
		sortBy    string
		sortOrder string
		want      string
	}{
		{"price", "asc", "price ASC"},
		{"price", "desc", "price DESC"},
		{"price", "", "price DESC"},
		{"name", "asc", "name ASC"},
		{"rating", "", "rating DESC, reviews DESC"},
		{"newest", "asc", "created_at ASC"},
		{"", "", "created_at DESC"},
		{"bogus", "asc", "created_at DESC"},
	}
	for _, tc := range cases {
		got := buildStorefrontOrderClause(tc.sortBy, tc.sortOrder)
		assert.Equal(t, tc.want, got, "sort_by=%q sort_order=%q", tc.sortBy, tc.sortOrder)
	}
}
