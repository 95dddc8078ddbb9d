package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrInvalidURL is returned for input that cannot be parsed as a URL.
var ErrInvalidURL = errors.New("invalid URL")

const (
	DefaultResolveTimeout = 5 * time.Second
	DefaultTrimTimeout    = 30 * time.Second
	DefaultDomainTimeout  = 1 * time.Second
	DefaultMaxRestarts    = 5
)

// LinkResolver expands shortened and redirecting links to their most
// informative final URL. All of its methods are safe for concurrent use.
type LinkResolver struct {
	fetcher       HopFetcher
	client        *http.Client
	userAgent     string
	timeout       time.Duration
	trimTimeout   time.Duration
	domainTimeout time.Duration
	maxRestarts   int
	shorteners    *ShortenerTable
	tracking      *TrackingRules
	logger        zerolog.Logger
}

// ResolverOption configures a LinkResolver.
type ResolverOption func(*LinkResolver)

// WithHopFetcher injects the HEAD request capability. It takes precedence
// over WithHTTPClient.
func WithHopFetcher(f HopFetcher) ResolverOption {
	return func(r *LinkResolver) { r.fetcher = f }
}

// WithHTTPClient shares a caller-owned client across calls so connections are
// reused. Without it every call builds its own client and releases its idle
// connections on return.
func WithHTTPClient(c *http.Client) ResolverOption {
	return func(r *LinkResolver) { r.client = c }
}

// WithUserAgent fixes the User-Agent header of resolver-created requests.
func WithUserAgent(ua string) ResolverOption {
	return func(r *LinkResolver) { r.userAgent = ua }
}

// WithTimeout bounds each request made by CanonicalLink.
func WithTimeout(d time.Duration) ResolverOption {
	return func(r *LinkResolver) { r.timeout = d }
}

// WithTrimTimeout bounds each HEAD request made by TrimGetParameters.
func WithTrimTimeout(d time.Duration) ResolverOption {
	return func(r *LinkResolver) { r.trimTimeout = d }
}

// WithDomainTimeout bounds each request made when ExtractDomainFromURL
// resolves its input and DomainOptions.Timeout is unset.
func WithDomainTimeout(d time.Duration) ResolverOption {
	return func(r *LinkResolver) { r.domainTimeout = d }
}

// WithMaxRestarts caps how many times resolution restarts on a URL embedded
// in a query parameter.
func WithMaxRestarts(n int) ResolverOption {
	return func(r *LinkResolver) { r.maxRestarts = n }
}

// WithShortenerTable replaces the embedded shortener table.
func WithShortenerTable(t *ShortenerTable) ResolverOption {
	return func(r *LinkResolver) { r.shorteners = t }
}

// WithKnownTrackingParams makes parameter trimming drop parameters matched by
// rules without probing them first.
func WithKnownTrackingParams(rules *TrackingRules) ResolverOption {
	return func(r *LinkResolver) { r.tracking = rules }
}

// WithLogger sets the logger used for per-hop debug output.
func WithLogger(l zerolog.Logger) ResolverOption {
	return func(r *LinkResolver) { r.logger = l }
}

// NewLinkResolver creates a resolver. It only fails when the embedded
// shortener table is needed and cannot be decoded.
func NewLinkResolver(opts ...ResolverOption) (*LinkResolver, error) {
	r := &LinkResolver{
		timeout:       DefaultResolveTimeout,
		trimTimeout:   DefaultTrimTimeout,
		domainTimeout: DefaultDomainTimeout,
		maxRestarts:   DefaultMaxRestarts,
		logger:        log.With().Str("component", "link_resolver").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.shorteners == nil {
		t, err := DefaultShortenerTable()
		if err != nil {
			return nil, err
		}
		r.shorteners = t
	}
	if r.userAgent == "" {
		r.userAgent = GetRandomUserAgent()
	}
	return r, nil
}

// Shorteners returns the table the resolver classifies hosts with.
func (r *LinkResolver) Shorteners() *ShortenerTable {
	return r.shorteners
}

// session returns the fetcher for one public call and the function releasing
// it. Only a resolver-created client is released.
func (r *LinkResolver) session() (HopFetcher, func()) {
	if r.fetcher != nil {
		return r.fetcher, func() {}
	}
	if r.client != nil {
		return NewHTTPHopFetcher(r.client, r.userAgent), func() {}
	}
	client := NewHTTPClient()
	return NewHTTPHopFetcher(client, r.userAgent), client.CloseIdleConnections
}

func (r *LinkResolver) head(ctx context.Context, f HopFetcher, rawURL string, follow bool, timeout time.Duration) ([]RedirectHop, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	hops, err := f.Head(ctx, rawURL, follow)
	if err != nil {
		return nil, err
	}
	if len(hops) == 0 {
		return nil, fmt.Errorf("HEAD %s: empty redirect history", rawURL)
	}
	return hops, nil
}

// withScheme prefixes URLs lacking an http(s) scheme with http://.
func withScheme(rawURL string) string {
	if strings.HasPrefix(rawURL, "http") {
		return rawURL
	}
	return "http://" + rawURL
}

func parseURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	return u, nil
}

func isRootPath(path string) bool {
	return path == "" || path == "/"
}
