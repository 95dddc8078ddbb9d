package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLRegex(t *testing.T) {
	text := "visit https://www.example.com/page?x=1 now, or bbc.co.uk later"
	assert.Equal(t, []string{"https://www.example.com/page?x=1", "bbc.co.uk"}, URLRegex.FindAllString(text, -1))
	assert.False(t, URLRegex.MatchString("no links here"))
}

func TestDomainRegex(t *testing.T) {
	tests := map[string]string{
		"https://www.example.com/path/to": "example.com",
		"http://news.example.org":         "news.example.org",
		"example.net/a":                   "example.net",
	}
	for in, want := range tests {
		m := DomainRegex.FindStringSubmatch(in)
		if assert.Len(t, m, 2, in) {
			assert.Equal(t, want, m[1], in)
		}
	}
}

func TestHTTPRegex(t *testing.T) {
	assert.Equal(t, "example.com/a", HTTPRegex.ReplaceAllString("https://example.com/a", ""))
	assert.Equal(t, "example.com/http://x", HTTPRegex.ReplaceAllString("http://example.com/http://x", ""))
	assert.Equal(t, "ftp://example.com", HTTPRegex.ReplaceAllString("ftp://example.com", ""))
}
