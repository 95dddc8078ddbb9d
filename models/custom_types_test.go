package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeURLStringKeepsAmpersands(t *testing.T) {
	s := SafeURLString("https://example.com/a?x=1&y=<2>")

	raw, err := s.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"https://example.com/a?x=1&y=<2>"`, string(raw))

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	require.NoError(t, enc.Encode(TrimParametersResponse{TrimmedURL: s}))
	assert.Contains(t, buf.String(), `"trimmed_url":"https://example.com/a?x=1&y=<2>"`)
}

func TestSafeURLStringUnmarshal(t *testing.T) {
	var got CanonicalLinkResponse
	require.NoError(t, json.Unmarshal([]byte(`{"original_url":"a?b=1&c=2","canonical_url":"x"}`), &got))
	assert.Equal(t, SafeURLString("a?b=1&c=2"), got.OriginalURL)

	var s SafeURLString
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}
