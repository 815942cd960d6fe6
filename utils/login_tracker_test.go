package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDeviceType(t *testing.T) {
	cases := []struct {
		userAgent string
		want      string
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) Mobile/15E148", "mobile"},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari/537.36", "mobile"},
		{"Mozilla/5.0 (iPad; CPU OS 17_4 like Mac OS X) Safari/604.1", "tablet"},
		{"Mozilla/5.0 (Linux; Android 13; SM-X710) Tablet Safari/537.36", "tablet"},
		{"Mozilla/5.0 (Linux; Android 11; KFTRWI) AppleWebKit/537.36 Kindle", "tablet"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/124.0", "desktop"},
		{"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_4) Safari/605.1.15", "desktop"},
		{"", "desktop"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseDeviceType(tc.userAgent), "ua=%q", tc.userAgent)
	}
}
