package utils

import (
	"context"
	"net/url"
	"strings"
	"time"
)

var (
	// identifierParamMarkers name parameters that probably identify content.
	identifierParamMarkers = []string{"document", "article", "id", "qs"}
	// nestedURLMarkers appear in values that carry a URL of their own.
	nestedURLMarkers = []string{"html", "http"}
)

// TrimGetParameters removes query parameters from an already resolved URL
// when dropping them leaves the destination unchanged. Each candidate is
// checked with a HEAD request; a request that fails or times out keeps the
// parameter. URLs without a query are returned as given.
func (r *LinkResolver) TrimGetParameters(ctx context.Context, rawURL string) (string, error) {
	fetcher, release := r.session()
	defer release()
	return r.trimGetParameters(ctx, fetcher, rawURL, r.trimTimeout)
}

func (r *LinkResolver) trimGetParameters(ctx context.Context, f HopFetcher, rawURL string, timeout time.Duration) (string, error) {
	parsed, err := parseURL(rawURL)
	if err != nil {
		return "", err
	}
	if parsed.RawQuery == "" {
		return rawURL, nil
	}

	params := parseQuery(parsed.RawQuery)
	ditch := make(map[string]bool)
	for _, param := range params {
		if r.tracking != nil {
			if rule, ok := r.tracking.Match(param.Key); ok {
				r.logger.Debug().Str("param", param.Key).Str("rule", rule.Key).Msg("dropping known tracking parameter")
				ditch[param.Key] = true
				continue
			}
		}
		if !isTrimCandidate(param) {
			continue
		}

		variant := *parsed
		variant.RawQuery = params.singleValued(func(key string) bool { return key == param.Key }).encode()
		if r.sameDestination(ctx, f, variant.String(), rawURL, timeout) {
			ditch[param.Key] = true
		}
	}

	if len(ditch) == 0 {
		return rawURL, nil
	}
	parsed.RawQuery = params.singleValued(func(key string) bool { return ditch[key] }).encode()
	return parsed.String(), nil
}

func isTrimCandidate(param queryParam) bool {
	key := strings.ToLower(param.Key)
	for _, marker := range identifierParamMarkers {
		if strings.Contains(key, marker) {
			return false
		}
	}
	value := strings.ToLower(param.Values[0])
	for _, marker := range nestedURLMarkers {
		if strings.Contains(value, marker) {
			return false
		}
	}
	return true
}

// sameDestination reports whether variant resolves somewhere other than a
// bare domain and lands on the same path as original.
func (r *LinkResolver) sameDestination(ctx context.Context, f HopFetcher, variant, original string, timeout time.Duration) bool {
	hops, err := r.head(ctx, f, variant, true, timeout)
	if err != nil {
		r.logger.Debug().Err(err).Str("url", variant).Msg("parameter check failed, keeping parameter")
		return false
	}
	final := hops[len(hops)-1].URL
	resolved, err := url.Parse(final)
	if err != nil {
		return false
	}
	if resolved.RawQuery == "" && isRootPath(resolved.EscapedPath()) {
		return false
	}
	return stripQuery(final) == stripQuery(original)
}

func stripQuery(rawURL string) string {
	before, _, _ := strings.Cut(rawURL, "?")
	return before
}
