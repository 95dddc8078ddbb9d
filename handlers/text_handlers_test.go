package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vit0-9/linkutils/models"
)

func TestStripHTMLHandler(t *testing.T) {
	router := newTestRouter(t, stubFetcher{})

	res := serve(router, http.MethodPost, "/text/strip-html", []byte(`{"html":"<script>x()</script><p>Fish &amp; <b>Chips</b></p>"}`))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"text":"Fish & Chips"`)

	res = serve(router, http.MethodPost, "/text/strip-html", []byte(`{"html":"<ul><li>a</li><li>b</li></ul>","break_tags":["li"]}`))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "a\n\nb", decode[models.StripHTMLResponse](t, res).Text)

	res = serve(router, http.MethodPost, "/text/strip-html", []byte(`{"html":"<div>a</div>b","simple":true}`))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "\na\nb", decode[models.StripHTMLResponse](t, res).Text)

	for _, body := range []string{`{}`, `not json`} {
		res = serve(router, http.MethodPost, "/text/strip-html", []byte(body))
		assert.Equal(t, http.StatusBadRequest, res.Code, body)
	}
}
