package utils

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
)

// maxRedirects matches the redirect limit of common scripting HTTP clients,
// which is higher than net/http's default of 10.
const maxRedirects = 30

var (
	// ErrConnection marks transport failures that happen before an HTTP
	// response is obtained (DNS, refused connections, TLS handshakes).
	ErrConnection = errors.New("connection failed")
	// ErrTimeout marks requests that exceeded their deadline.
	ErrTimeout = errors.New("request timed out")
)

// RedirectHop is one response observed while following a redirect chain.
type RedirectHop struct {
	StatusCode int    `json:"status_code"`
	URL        string `json:"url"`
}

// HopFetcher issues HEAD requests and reports the redirect history.
// The returned hops are in chronological order: the initial request first,
// the final response last.
type HopFetcher interface {
	Head(ctx context.Context, rawURL string, followRedirects bool) ([]RedirectHop, error)
}

// HTTPHopFetcher is the HopFetcher backed by a real *http.Client.
type HTTPHopFetcher struct {
	Client    *http.Client
	UserAgent string
}

// NewHTTPHopFetcher wraps client; a nil client gets a fresh NewHTTPClient.
func NewHTTPHopFetcher(client *http.Client, userAgent string) *HTTPHopFetcher {
	if client == nil {
		client = NewHTTPClient()
	}
	return &HTTPHopFetcher{Client: client, UserAgent: userAgent}
}

// Head requests rawURL with the HEAD method. With followRedirects unset the
// first response is returned as a single hop, whatever its status.
func (f *HTTPHopFetcher) Head(ctx context.Context, rawURL string, followRedirects bool) ([]RedirectHop, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidURL, rawURL, err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	client := *f.Client
	if followRedirects {
		client.CheckRedirect = func(_ *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		}
	} else {
		client.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, classifyTransportError(rawURL, err)
	}
	defer resp.Body.Close()

	return redirectHistory(resp), nil
}

// redirectHistory rebuilds the hop list from the chain of responses that
// net/http links through Request.Response on every followed redirect.
func redirectHistory(resp *http.Response) []RedirectHop {
	hops := []RedirectHop{{StatusCode: resp.StatusCode, URL: resp.Request.URL.String()}}
	for req := resp.Request; req.Response != nil; req = req.Response.Request {
		prev := req.Response
		hops = append(hops, RedirectHop{StatusCode: prev.StatusCode, URL: prev.Request.URL.String()})
	}
	slices.Reverse(hops)
	return hops
}

func classifyTransportError(rawURL string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("HEAD %s: %w", rawURL, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: HEAD %s: %w", ErrTimeout, rawURL, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: HEAD %s: %w", ErrConnection, rawURL, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: HEAD %s: %w", ErrTimeout, rawURL, err)
	}

	var (
		dnsErr    *net.DNSError
		certErr   *tls.CertificateVerificationError
		recordErr tls.RecordHeaderError
	)
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) || errors.As(err, &certErr) || errors.As(err, &recordErr) {
		return fmt.Errorf("%w: HEAD %s: %w", ErrConnection, rawURL, err)
	}
	return fmt.Errorf("HEAD %s: %w", rawURL, err)
}
