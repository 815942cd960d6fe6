package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderNumberPrefixResetsPerYear(t *testing.T) {
	assert.Equal(t, "ORD-2025-", orderNumberPrefix(2025))
	assert.Equal(t, "ORD-2026-", orderNumberPrefix(2026))
}

func TestFormatOrderNumber(t *testing.T) {
	cases := []struct {
		seq  int64
		want string
	}{
		{1, "ORD-2025-000001"},
		{42, "ORD-2025-000042"},
		{999999, "ORD-2025-999999"},
		{1000000, "ORD-2025-1000000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, formatOrderNumber("ORD-2025-", tc.seq), "seq=%d", tc.seq)
	}
}
