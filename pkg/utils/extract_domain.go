package utils

import (
	"cmp"
	"context"
	"fmt"
	"time"

	"github.com/vit0-9/linkutils/pkg/utils/domain"
)

// DomainOptions tunes ExtractDomainFromURL.
type DomainOptions struct {
	// IncludeSubdomain keeps a subdomain other than www in the result.
	IncludeSubdomain bool
	// ResolveURL runs CanonicalLink on the input first.
	ResolveURL bool
	// Timeout bounds each request made while resolving. Zero uses the
	// resolver's domain timeout.
	Timeout time.Duration
}

// ExtractDomainFromURL returns the registrable domain of rawURL, e.g.
// bbc.co.uk for http://forums.bbc.co.uk. Vanity shortener domains are
// replaced by the domain that owns them, so nyti.ms becomes nytimes.com
// whether or not the link is resolved.
func (r *LinkResolver) ExtractDomainFromURL(ctx context.Context, rawURL string, opts DomainOptions) (string, error) {
	if opts.ResolveURL {
		fetcher, release := r.session()
		defer release()
		resolved, err := r.canonicalLink(ctx, fetcher, rawURL, cmp.Or(opts.Timeout, r.domainTimeout))
		if err != nil {
			return "", err
		}
		rawURL = resolved
	}

	parts, err := domain.Extract(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	name := parts.Registrable()
	if opts.IncludeSubdomain && parts.Subdomain != "" && parts.Subdomain != "www" {
		name = parts.WithSubdomain()
	}
	if owner, ok := r.shorteners.Expand(name); ok {
		return owner, nil
	}
	return name, nil
}
