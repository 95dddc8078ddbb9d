package utils

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// errorLandingMarker identifies generic 404 landing pages that some sites
// redirect dead links to.
const errorLandingMarker = "errors/404"

// Landing-page heuristic thresholds, calibrated against real redirect chains.
// Changing them silently changes which URLs resolve.
const (
	landingHostMinLen = 7
	landingPartMaxLen = 20
)

var (
	badStatusCodes = map[int]bool{
		302: true, 307: true, 400: true, 404: true, 405: true, 407: true,
		500: true, 501: true, 502: true, 503: true, 504: true, 520: true, 530: true,
	}
	// proxyRequiredCodes tend to mark the last good URL of a chain.
	proxyRequiredCodes = map[int]bool{307: true, 407: true}
	// checkLengthCodes get the landing-page heuristic on non-first hops.
	checkLengthCodes = map[int]bool{301: true, 302: true, 200: true, 404: true}
)

// CanonicalLink follows the redirects of rawURL and picks the most
// informative URL of the chain, skipping shortener hops and generic landing
// pages, then trims query parameters that do not change the destination.
//
// A missing scheme defaults to http. Network failures are not errors: the
// scheme-normalized input is returned unchanged. Only unparsable input yields
// ErrInvalidURL.
func (r *LinkResolver) CanonicalLink(ctx context.Context, rawURL string) (string, error) {
	fetcher, release := r.session()
	defer release()
	return r.canonicalLink(ctx, fetcher, rawURL, r.timeout)
}

func (r *LinkResolver) canonicalLink(ctx context.Context, f HopFetcher, rawURL string, timeout time.Duration) (string, error) {
	target := withScheme(rawURL)
	if err := validateLink(target); err != nil {
		return "", err
	}

	for restarts := 0; ; restarts++ {
		hops, err := r.fetchHistory(ctx, f, target, timeout)
		if err != nil {
			r.logger.Debug().Err(err).Str("url", target).Msg("no response, keeping original link")
			return target, nil
		}

		walk := r.walk(hops)
		if walk.embedded != "" {
			if restarts >= r.maxRestarts {
				r.logger.Warn().
					Str("url", target).
					Str("embedded", walk.embedded).
					Int("restarts", restarts).
					Msg("restart limit reached, returning embedded link unresolved")
				return withScheme(walk.embedded), nil
			}
			r.logger.Debug().Str("from", target).Str("to", walk.embedded).Msg("restarting on embedded link")
			target = withScheme(walk.embedded)
			continue
		}

		result := walk.lastGood
		if !badStatusCodes[walk.status] {
			trimmed, err := r.trimGetParameters(ctx, f, result, timeout)
			if err != nil {
				r.logger.Debug().Err(err).Str("url", result).Msg("skipping parameter trimming")
			} else {
				result = trimmed
			}
		}
		return result, nil
	}
}

// fetchHistory follows redirects; when the connection itself fails it retries
// once without following them.
func (r *LinkResolver) fetchHistory(ctx context.Context, f HopFetcher, target string, timeout time.Duration) ([]RedirectHop, error) {
	hops, err := r.head(ctx, f, target, true, timeout)
	if errors.Is(err, ErrConnection) {
		r.logger.Debug().Err(err).Str("url", target).Msg("retrying without redirects")
		hops, err = r.head(ctx, f, target, false, timeout)
	}
	return hops, err
}

// walkResult is the outcome of scanning one redirect history. A non-empty
// embedded means resolution must restart on that URL.
type walkResult struct {
	lastGood string
	status   int
	embedded string
}

// resolutionState is the per-call memory of a walk over redirect hops.
type resolutionState struct {
	lastGood         string
	originalPath     string
	hasPath          bool
	hasQuery         bool
	prevWasShortener bool
	prevPath         *string
	prevQuery        *string
}

func (r *LinkResolver) walk(hops []RedirectHop) walkResult {
	st := resolutionState{lastGood: hops[0].URL}
	if original, err := url.Parse(hops[0].URL); err == nil {
		st.originalPath = original.EscapedPath()
		st.hasPath = !isRootPath(st.originalPath)
		st.hasQuery = original.RawQuery != ""
	}

	var status int
	for i, hop := range hops {
		status = hop.StatusCode
		if strings.Contains(hop.URL, errorLandingMarker) {
			r.logger.Debug().Str("url", hop.URL).Msg("reached error landing page")
			break
		}
		parsed, err := url.Parse(hop.URL)
		if err != nil {
			r.logger.Debug().Err(err).Str("url", hop.URL).Msg("unparsable hop")
			break
		}
		host := strings.ToLower(parsed.Host)
		path := parsed.EscapedPath()
		query := parsed.RawQuery
		isShortener := r.shorteners.IsShortener(host)

		if !isShortener {
			if i != 0 {
				if target, ok := embeddedLink(query); ok {
					return walkResult{embedded: target}
				}
			}
			if proxyRequiredCodes[status] {
				st.lastGood = hop.URL
				break
			}

			goodPath := !st.hasPath || !isRootPath(path)
			goodQuery := !st.hasQuery || query != ""
			if !goodPath && !goodQuery {
				// Shorteners are rarely used for bare domains.
				break
			}

			switch {
			case st.sameLink(hop.URL) || path == st.originalPath:
				st.lastGood = hop.URL
			case i != 0 && checkLengthCodes[status]:
				if !st.looksLikeLandingPage(host, path, query) || st.prevWasShortener {
					st.lastGood = hop.URL
				} else {
					r.logger.Debug().Int("status", status).Str("url", hop.URL).Msg("skipping landing page")
				}
			case badStatusCodes[status]:
				return walkResult{lastGood: st.lastGood, status: status}
			default:
				st.lastGood = hop.URL
			}
		}

		st.prevWasShortener = isShortener
		st.prevPath = &path
		st.prevQuery = &query
	}
	return walkResult{lastGood: st.lastGood, status: status}
}

// sameLink reports whether u differs from the last accepted URL only by
// scheme or letter case.
func (st *resolutionState) sameLink(u string) bool {
	if strings.ReplaceAll(u, "https", "http") == strings.ReplaceAll(st.lastGood, "https", "http") {
		return true
	}
	return strings.EqualFold(u, st.lastGood)
}

// looksLikeLandingPage flags hops on a real (non-short) host whose path or
// query collapsed to something short that the previous hop did not have.
func (st *resolutionState) looksLikeLandingPage(host, path, query string) bool {
	if len(host) <= landingHostMinLen {
		return false
	}
	if st.hasPath && len(path) < landingPartMaxLen && query == "" && differs(st.prevPath, path) {
		return true
	}
	return st.hasQuery && len(query) < landingPartMaxLen && len(path) <= 1 && differs(st.prevQuery, query)
}

func differs(prev *string, cur string) bool {
	return prev == nil || *prev != cur
}

// embeddedLink finds a query parameter whose single value is itself an
// absolute URL, the usual shape of interstitial redirect pages.
func embeddedLink(rawQuery string) (string, bool) {
	for _, param := range parseQuery(rawQuery) {
		if len(param.Values) != 1 || !strings.HasPrefix(param.Values[0], "http") {
			continue
		}
		u, err := url.Parse(param.Values[0])
		if err == nil && u.Scheme != "" && u.Host != "" {
			return param.Values[0], true
		}
	}
	return "", false
}

func validateLink(rawURL string) error {
	u, err := parseURL(rawURL)
	if err != nil {
		return err
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
	}
	return nil
}
