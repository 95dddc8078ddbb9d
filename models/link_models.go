package models

// CanonicalLinkResponse is returned by GET /url/canonical.
type CanonicalLinkResponse struct {
	OriginalURL  SafeURLString `json:"original_url" example:"https://nyti.ms/2abcXYZ"`
	CanonicalURL SafeURLString `json:"canonical_url" example:"https://www.nytimes.com/2024/05/01/us/story.html"`
}

// TrimParametersResponse is returned by GET /url/trim.
type TrimParametersResponse struct {
	OriginalURL SafeURLString `json:"original_url" example:"https://example.com/article?ref=home&id=7"`
	TrimmedURL  SafeURLString `json:"trimmed_url" example:"https://example.com/article?id=7"`
}

// DomainResponse is returned by GET /url/domain.
type DomainResponse struct {
	URL              SafeURLString `json:"url" example:"http://forums.bbc.co.uk/thread/1"`
	Domain           string        `json:"domain" example:"bbc.co.uk"`
	IncludeSubdomain bool          `json:"include_subdomain"`
	Resolved         bool          `json:"resolved"`
}

// HashResponse is returned by GET /url/hash.
type HashResponse struct {
	URL  SafeURLString `json:"url" example:"http://www.example.com"`
	Hash string        `json:"hash" example:"7c1767b30512b6003fd3c2e618a86522"`
}

// NormalizeResponse is returned by GET /url/normalize.
type NormalizeResponse struct {
	OriginalURL   SafeURLString `json:"original_url" example:"http://Example.COM:80/a/./b/?b=2&a=1"`
	NormalizedURL SafeURLString `json:"normalized_url" example:"http://example.com/a/b?a=1&b=2"`
}

// ShortenersResponse lists the shortener tables the resolver uses.
type ShortenersResponse struct {
	General    []string          `json:"general"`
	Vanity     map[string]string `json:"vanity"`
	Historical map[string]string `json:"historical"`
}

// DomainRequest binds the query of GET /url/domain.
type DomainRequest struct {
	URL              string `form:"url" binding:"required"`
	IncludeSubdomain bool   `form:"include_subdomain"`
	Resolve          bool   `form:"resolve"`
}
