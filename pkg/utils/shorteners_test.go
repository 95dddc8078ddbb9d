package utils

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultShortenerTable(t *testing.T) {
	table, err := DefaultShortenerTable()
	require.NoError(t, err)

	assert.True(t, table.IsShortener("bit.ly"))
	assert.True(t, table.IsShortener("BIT.LY"))
	assert.True(t, table.IsShortener("nyti.ms"))
	assert.True(t, table.IsShortener("abcn.ws"))
	assert.False(t, table.IsShortener("example.com"))
	assert.False(t, table.IsShortener("www.bit.ly"))

	owner, ok := table.Expand("nyti.ms")
	assert.True(t, ok)
	assert.Equal(t, "nytimes.com", owner)

	owner, ok = table.Expand("abcn.ws")
	assert.True(t, ok)
	assert.Equal(t, "abcnews.com", owner)
	assert.True(t, table.IsHistorical("abcn.ws"))
	assert.False(t, table.IsHistorical("nyti.ms"))

	_, ok = table.Expand("bit.ly")
	assert.False(t, ok)
}

func TestShortenerTableListings(t *testing.T) {
	table, err := DefaultShortenerTable()
	require.NoError(t, err)

	general := table.General()
	assert.Len(t, general, 42)
	assert.True(t, slices.IsSorted(general))
	assert.Contains(t, general, "t.co")

	vanity := table.Vanity()
	for short, owner := range table.Historical() {
		assert.Equal(t, owner, vanity[short], short)
	}

	vanity["nyti.ms"] = "changed.example"
	owner, _ := table.Expand("nyti.ms")
	assert.Equal(t, "nytimes.com", owner)
}

func TestParseShortenerTable(t *testing.T) {
	table, err := ParseShortenerTable([]byte(`{
		"general": ["Short.LY"],
		"vanity": {"nyti.ms": "nytimes.com"},
		"historical": {"old.ms": "old.example.com"}
	}`))
	require.NoError(t, err)

	assert.True(t, table.IsShortener("short.ly"))
	assert.True(t, table.IsShortener("old.ms"))
	assert.Equal(t, []string{"short.ly"}, table.General())
	assert.Len(t, table.Vanity(), 2)

	_, err = ParseShortenerTable([]byte(`{"general": "bit.ly"}`))
	assert.Error(t, err)
}
