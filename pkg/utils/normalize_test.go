package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := map[string]string{
		"http://Example.COM:80/a/./b/../c//d/?b=2&a=1#frag": "http://example.com/a/c/d?a=1&b=2",
		"example.com":                       "http://example.com",
		"https://example.com:443/path/":     "https://example.com/path",
		"https://www.Example.com/A?z=1&y=2": "https://www.example.com/A?y=2&z=1",
	}
	for in, want := range tests {
		got, err := NormalizeURL(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNormalizeURLRejectsInvalidURL(t *testing.T) {
	_, err := NormalizeURL("http://[::1")
	assert.ErrorIs(t, err, ErrInvalidURL)
}
