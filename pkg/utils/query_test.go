package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuery(t *testing.T) {
	params := parseQuery("b=1&a=&c=x%20y&b=2&flag&&d=%zz")
	assert.Equal(t, queryParams{
		{Key: "b", Values: []string{"1", "2"}},
		{Key: "c", Values: []string{"x y"}},
		{Key: "d", Values: []string{"%zz"}},
	}, params)

	assert.Empty(t, parseQuery(""))
}

func TestQueryParamsEncode(t *testing.T) {
	params := parseQuery("z=1&q=a+b&m=2&m=3")

	assert.Equal(t, "z=1&q=a+b&m=2&m=3", params.encode())
	assert.Equal(t, "q=a+b", params.singleValued(func(key string) bool { return key == "z" }).encode())
	assert.Equal(t, "", queryParams(nil).encode())
}
