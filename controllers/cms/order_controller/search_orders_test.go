package order_controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchTimeRFC3339(t *testing.T) {
	got, err := parseSearchTime("2025-03-14T09:30:00+05:30")
	require.NoError(t, err)

	loc := time.FixedZone("", 5*3600+30*60)
	assert.True(t, got.Equal(time.Date(2025, 3, 14, 9, 30, 0, 0, loc)))
}

func TestParseSearchTimeBareDate(t *testing.T) {
	got, err := parseSearchTime(" 2025-03-14 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestParseSearchTimeRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "yesterday", "14/03/2025", "2025-13-01"} {
		_, err := parseSearchTime(s)
		assert.Error(t, err, "input=%q", s)
	}
}
