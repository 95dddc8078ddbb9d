package utils

import (
	"fmt"

	"github.com/PuerkitoBio/purell"
)

var normalizeFlags = purell.FlagsUsuallySafeGreedy |
	purell.FlagRemoveDuplicateSlashes |
	purell.FlagRemoveFragment |
	purell.FlagSortQuery

// NormalizeURL rewrites rawURL into a syntactically canonical form without
// touching the network: lowercase scheme and host, no default port, dot
// segments resolved, duplicate slashes and fragment removed, sorted query.
func NormalizeURL(rawURL string) (string, error) {
	normalized, err := purell.NormalizeURLString(withScheme(rawURL), normalizeFlags)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	return normalized, nil
}
