package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, f HopFetcher, opts ...ResolverOption) *LinkResolver {
	t.Helper()
	opts = append([]ResolverOption{
		WithHopFetcher(f),
		WithShortenerTable(NewShortenerTable([]string{"short.ly"}, map[string]string{"nyti.ms": "nytimes.com"}, nil)),
		WithLogger(zerolog.Nop()),
	}, opts...)
	r, err := NewLinkResolver(opts...)
	require.NoError(t, err)
	return r
}

func TestCanonicalLinkSkipsShortenerHops(t *testing.T) {
	f := newScriptedFetcher().follow("https://short.ly/x",
		hop(http.StatusMovedPermanently, "https://short.ly/x"),
		hop(http.StatusOK, "https://news.example.com/full/article/path"),
	)
	r := newTestResolver(t, f)

	got, err := r.CanonicalLink(context.Background(), "https://short.ly/x")
	require.NoError(t, err)
	assert.Equal(t, "https://news.example.com/full/article/path", got)
}

func TestCanonicalLinkStopsAtErrorLandingPage(t *testing.T) {
	f := newScriptedFetcher().follow("http://example.com/story/123",
		hop(http.StatusMovedPermanently, "http://example.com/story/123"),
		hop(http.StatusFound, "https://www.example.com/story/123"),
		hop(http.StatusOK, "https://www.example.com/errors/404"),
	)
	r := newTestResolver(t, f)

	got, err := r.CanonicalLink(context.Background(), "http://example.com/story/123")
	require.NoError(t, err)
	assert.Equal(t, "https://www.example.com/story/123", got)
}

func TestCanonicalLinkRestartsOnEmbeddedURL(t *testing.T) {
	f := newScriptedFetcher().
		follow("http://t.example.net/abc",
			hop(http.StatusMovedPermanently, "http://t.example.net/abc"),
			hop(http.StatusOK, "https://wrapper.example.org/redirect?url=https%3A%2F%2Freal.example.com%2Fpage"),
		).
		follow("https://real.example.com/page",
			hop(http.StatusOK, "https://real.example.com/page"),
		)
	r := newTestResolver(t, f)

	got, err := r.CanonicalLink(context.Background(), "t.example.net/abc")
	require.NoError(t, err)
	assert.Equal(t, "https://real.example.com/page", got)
}

func TestCanonicalLinkBoundsRestarts(t *testing.T) {
	a := "https://a.example.com/one"
	b := "https://b.example.com/two"
	f := newScriptedFetcher().
		follow(a, hop(http.StatusMovedPermanently, a), hop(http.StatusOK, "https://hop.example.org/go?to="+url.QueryEscape(b))).
		follow(b, hop(http.StatusMovedPermanently, b), hop(http.StatusOK, "https://hop.example.org/go?to="+url.QueryEscape(a)))
	r := newTestResolver(t, f, WithMaxRestarts(2))

	got, err := r.CanonicalLink(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, b, got)
	assert.Len(t, f.calls, 3)
}

func TestCanonicalLinkRetriesWithoutRedirectsOnConnectionError(t *testing.T) {
	u := "http://flaky.example.com/post/1"
	f := newScriptedFetcher().
		fail(u, true, ErrConnection).
		direct(u, hop(http.StatusMovedPermanently, u))
	r := newTestResolver(t, f)

	got, err := r.CanonicalLink(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.Equal(t, []fetchKey{{u, true}, {u, false}}, f.calls)
}

func TestCanonicalLinkFallsBackToInput(t *testing.T) {
	t.Run("connection failures", func(t *testing.T) {
		f := newScriptedFetcher().
			fail("http://example.com/path", true, ErrConnection).
			fail("http://example.com/path", false, ErrConnection)
		r := newTestResolver(t, f)

		got, err := r.CanonicalLink(context.Background(), "example.com/path")
		require.NoError(t, err)
		assert.Equal(t, "http://example.com/path", got)
	})

	t.Run("timeouts are not retried", func(t *testing.T) {
		f := newScriptedFetcher()
		r := newTestResolver(t, f)

		got, err := r.CanonicalLink(context.Background(), "https://slow.example.com/a")
		require.NoError(t, err)
		assert.Equal(t, "https://slow.example.com/a", got)
		assert.Len(t, f.calls, 1)
	})
}

func TestCanonicalLinkWalk(t *testing.T) {
	tests := []struct {
		name  string
		input string
		hops  []RedirectHop
		want  string
	}{
		{
			name:  "proxy required hop is final",
			input: "http://example.com/a",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "http://example.com/a"),
				hop(http.StatusTemporaryRedirect, "https://landing.example.com/x?id=1"),
				hop(http.StatusOK, "https://other.example.com/"),
			},
			want: "https://landing.example.com/x?id=1",
		},
		{
			name:  "generic landing page is rejected",
			input: "http://example.com/a/b",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "http://example.com/a/b"),
				hop(http.StatusOK, "https://example.com/"),
			},
			want: "http://example.com/a/b",
		},
		{
			name:  "bare domain ends the walk",
			input: "http://example.com/a?x=1",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "http://example.com/a?x=1"),
				hop(http.StatusOK, "https://example.com/"),
			},
			want: "http://example.com/a?x=1",
		},
		{
			name:  "bad status ends the walk",
			input: "http://example.com/a",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "http://example.com/a"),
				hop(http.StatusServiceUnavailable, "https://elsewhere.example.org/b"),
			},
			want: "http://example.com/a",
		},
		{
			name:  "scheme change is accepted",
			input: "http://Example.com/Story",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "http://Example.com/Story"),
				hop(http.StatusOK, "https://Example.com/Story"),
			},
			want: "https://Example.com/Story",
		},
		{
			name:  "case change is accepted",
			input: "http://Example.com/Story",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "http://Example.com/Story"),
				hop(http.StatusOK, "http://example.com/story"),
			},
			want: "http://example.com/story",
		},
		{
			name:  "long article path is accepted",
			input: "http://example.com/p/42",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "http://example.com/p/42"),
				hop(http.StatusOK, "https://www.example.com/2024/05/some-long-article-title"),
			},
			want: "https://www.example.com/2024/05/some-long-article-title",
		},
		{
			name:  "vanity shortener hop is skipped",
			input: "https://nyti.ms/3abc",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "https://nyti.ms/3abc"),
				hop(http.StatusMovedPermanently, "https://www.nytimes.com/2024/05/01/us/story.html"),
				hop(http.StatusOK, "https://www.nytimes.com/2024/05/01/us/story.html"),
			},
			want: "https://www.nytimes.com/2024/05/01/us/story.html",
		},
		{
			name:  "landing page after a shortener hop is accepted",
			input: "http://example.com/a/b/c",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "http://example.com/a/b/c"),
				hop(http.StatusMovedPermanently, "https://short.ly/x"),
				hop(http.StatusOK, "https://www.example.com/home"),
			},
			want: "https://www.example.com/home",
		},
		{
			name:  "landing page without a shortener hop is rejected",
			input: "http://example.com/a/b/c",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "http://example.com/a/b/c"),
				hop(http.StatusOK, "https://www.example.com/home"),
			},
			want: "http://example.com/a/b/c",
		},
		{
			name:  "short query on the root path is rejected",
			input: "http://example.com/item?id=12345",
			hops: []RedirectHop{
				hop(http.StatusMovedPermanently, "http://example.com/item?id=12345"),
				hop(http.StatusOK, "https://www.example.com/?p=1"),
			},
			want: "http://example.com/item?id=12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newScriptedFetcher().follow(tt.input, tt.hops...)
			r := newTestResolver(t, f)

			got, err := r.CanonicalLink(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalLinkRestartsBeforeProxyRequiredHop(t *testing.T) {
	f := newScriptedFetcher().
		follow("http://example.com/a",
			hop(http.StatusMovedPermanently, "http://example.com/a"),
			hop(http.StatusTemporaryRedirect, "https://w.example.org/r?u=https%3A%2F%2Freal.example.com%2Fp"),
		).
		follow("https://real.example.com/p",
			hop(http.StatusOK, "https://real.example.com/p"),
		)
	r := newTestResolver(t, f)

	got, err := r.CanonicalLink(context.Background(), "http://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "https://real.example.com/p", got)
	assert.Equal(t, []fetchKey{{"http://example.com/a", true}, {"https://real.example.com/p", true}}, f.calls)
}

func TestCanonicalLinkTrimsParametersAfterResolution(t *testing.T) {
	article := "https://news.example.com/2024/01/long-article-slug"
	f := newScriptedFetcher().
		follow("http://short.ly/abc",
			hop(http.StatusMovedPermanently, "http://short.ly/abc"),
			hop(http.StatusOK, article+"?utm_source=twitter&ref=home"),
		).
		follow(article+"?ref=home", hop(http.StatusOK, article+"?ref=home")).
		follow(article+"?utm_source=twitter",
			hop(http.StatusMovedPermanently, article+"?utm_source=twitter"),
			hop(http.StatusOK, "https://news.example.com/"),
		)
	r := newTestResolver(t, f)

	got, err := r.CanonicalLink(context.Background(), "short.ly/abc")
	require.NoError(t, err)
	assert.Equal(t, article+"?ref=home", got)
}

func TestCanonicalLinkSkipsTrimOnBadStatus(t *testing.T) {
	u := "http://example.com/a"
	f := newScriptedFetcher().follow(u,
		hop(http.StatusMovedPermanently, u),
		hop(http.StatusTemporaryRedirect, "https://landing.example.com/x?page=1"),
	)
	r := newTestResolver(t, f)

	got, err := r.CanonicalLink(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "https://landing.example.com/x?page=1", got)
	assert.Len(t, f.calls, 1)
}

func TestCanonicalLinkRejectsInvalidURL(t *testing.T) {
	r := newTestResolver(t, newScriptedFetcher())

	for _, input := range []string{"", "http://[::1", "http:///no-host"} {
		_, err := r.CanonicalLink(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidURL, input)
	}
}

func TestCanonicalLinkOverHTTP(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/s/abc", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/articles/2024/a-long-enough-slug?utm_source=feed", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/articles/2024/a-long-enough-slug", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	r, err := NewLinkResolver(WithHTTPClient(srv.Client()), WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	got, err := r.CanonicalLink(context.Background(), srv.URL+"/s/abc")
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/articles/2024/a-long-enough-slug", got)
}
