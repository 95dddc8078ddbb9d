package utils

import "regexp"

var (
	// URLRegex finds strings that are probably URLs, with or without a scheme.
	URLRegex = regexp.MustCompile(`((?:https?://(?:www\.)?)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-z]{2,6}\b(?:[-a-zA-Z0-9@:%_+.~#?&/=]*))`)

	// DomainRegex captures the host of a URL minus any www prefix. Prefer
	// ExtractDomainFromURL when the public suffix matters.
	DomainRegex = regexp.MustCompile(`(?:https?://)?(?:wwws?\.)?([\w.\-]+)(?:[\\/].+)?`)

	// HTTPRegex matches a leading http:// or https://.
	HTTPRegex = regexp.MustCompile(`^https?://`)
)
