// Package domain splits hostnames into subdomain, registrable domain and
// public suffix using the ICANN section of the public suffix list.
package domain

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// ErrNoHost is returned when a URL carries no hostname.
var ErrNoHost = errors.New("no host in URL")

// Parts is a hostname split around its public suffix. For forums.bbc.co.uk
// that is Subdomain "forums", Domain "bbc", Suffix "co.uk".
type Parts struct {
	Subdomain string `json:"subdomain,omitempty"`
	Domain    string `json:"domain"`
	Suffix    string `json:"suffix,omitempty"`
}

// Registrable joins Domain and Suffix. Hosts that are themselves a public
// suffix (ma.us) return the suffix alone.
func (p Parts) Registrable() string {
	switch {
	case p.Domain == "":
		return p.Suffix
	case p.Suffix == "":
		return p.Domain
	}
	return p.Domain + "." + p.Suffix
}

// WithSubdomain is Registrable prefixed by the subdomain, when there is one.
func (p Parts) WithSubdomain() string {
	if p.Subdomain == "" {
		return p.Registrable()
	}
	return p.Subdomain + "." + p.Registrable()
}

// Extract splits the host of rawURL. A missing scheme is tolerated. Ports,
// credentials and letter case are dropped; IP addresses come back whole in
// Domain.
func Extract(rawURL string) (Parts, error) {
	host, err := hostname(rawURL)
	if err != nil {
		return Parts{}, err
	}
	if net.ParseIP(host) != nil {
		return Parts{Domain: host}, nil
	}

	suffix := icannSuffix(host)
	if suffix == host {
		return Parts{Suffix: suffix}, nil
	}
	rest := strings.TrimSuffix(host, "."+suffix)
	i := strings.LastIndexByte(rest, '.')
	if i < 0 {
		return Parts{Domain: rest, Suffix: suffix}, nil
	}
	return Parts{Subdomain: rest[:i], Domain: rest[i+1:], Suffix: suffix}, nil
}

func hostname(rawURL string) (string, error) {
	s := strings.TrimSpace(rawURL)
	if !strings.Contains(s, "://") {
		s = "http://" + strings.TrimPrefix(s, "//")
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parsing %q: %w", rawURL, err)
	}
	host := strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return "", fmt.Errorf("%w: %q", ErrNoHost, rawURL)
	}
	return host, nil
}

// icannSuffix walks past privately registered suffixes (blogspot.com) to the
// ICANN-managed one beneath them.
func icannSuffix(host string) string {
	suffix, icann := publicsuffix.PublicSuffix(host)
	for !icann {
		_, parent, found := strings.Cut(suffix, ".")
		if !found {
			break
		}
		suffix, icann = publicsuffix.PublicSuffix(parent)
	}
	return suffix
}
