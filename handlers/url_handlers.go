package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/vit0-9/linkutils/models"
	"github.com/vit0-9/linkutils/pkg/utils"
)

// URLUtilitiesHandlers exposes the link resolver and the offline URL helpers.
type URLUtilitiesHandlers struct {
	resolver *utils.LinkResolver
	logger   zerolog.Logger
}

// NewURLUtilitiesHandlers creates the URL handlers around resolver.
func NewURLUtilitiesHandlers(resolver *utils.LinkResolver, logger zerolog.Logger) *URLUtilitiesHandlers {
	return &URLUtilitiesHandlers{resolver: resolver, logger: logger}
}

// CanonicalLinkHandler godoc
// @Summary      Canonicalize a link
// @Description  Follows the redirect chain of a URL and returns the most informative destination, skipping shorteners and generic landing pages, then drops redundant query parameters.
// @Tags         URL Resolution
// @Produce      json
// @Param        url query string true "URL to canonicalize"
// @Success      200 {object} models.CanonicalLinkResponse
// @Failure      400 {object} models.ErrorResponse
// @Router       /url/canonical [get]
func (h *URLUtilitiesHandlers) CanonicalLinkHandler(c *gin.Context) {
	rawURL, ok := requireURLQuery(c)
	if !ok {
		return
	}

	canonical, err := h.resolver.CanonicalLink(c.Request.Context(), rawURL)
	if err != nil {
		h.writeError(c, "Failed to canonicalize URL", err)
		return
	}
	c.PureJSON(http.StatusOK, models.CanonicalLinkResponse{
		OriginalURL:  models.SafeURLString(rawURL),
		CanonicalURL: models.SafeURLString(canonical),
	})
}

// TrimParametersHandler godoc
// @Summary      Trim query parameters
// @Description  Removes query parameters whose absence leaves the destination unchanged. Each parameter is checked with a HEAD request.
// @Tags         URL Resolution
// @Produce      json
// @Param        url query string true "Resolved URL to trim"
// @Success      200 {object} models.TrimParametersResponse
// @Failure      400 {object} models.ErrorResponse
// @Router       /url/trim [get]
func (h *URLUtilitiesHandlers) TrimParametersHandler(c *gin.Context) {
	rawURL, ok := requireURLQuery(c)
	if !ok {
		return
	}

	trimmed, err := h.resolver.TrimGetParameters(c.Request.Context(), rawURL)
	if err != nil {
		h.writeError(c, "Failed to trim URL", err)
		return
	}
	c.PureJSON(http.StatusOK, models.TrimParametersResponse{
		OriginalURL: models.SafeURLString(rawURL),
		TrimmedURL:  models.SafeURLString(trimmed),
	})
}

// DomainHandler godoc
// @Summary      Extract the domain of a URL
// @Description  Returns the registrable domain of a URL. Vanity shorteners map to the domain that owns them. Optionally resolves the URL first.
// @Tags         URL Resolution
// @Produce      json
// @Param        url               query string true  "URL"
// @Param        include_subdomain query bool   false "Keep subdomains other than www"
// @Param        resolve           query bool   false "Canonicalize the URL before extracting"
// @Success      200 {object} models.DomainResponse
// @Failure      400 {object} models.ErrorResponse
// @Router       /url/domain [get]
func (h *URLUtilitiesHandlers) DomainHandler(c *gin.Context) {
	var req models.DomainRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid query parameters", Details: err.Error()})
		return
	}

	name, err := h.resolver.ExtractDomainFromURL(c.Request.Context(), req.URL, utils.DomainOptions{
		IncludeSubdomain: req.IncludeSubdomain,
		ResolveURL:       req.Resolve,
	})
	if err != nil {
		h.writeError(c, "Failed to extract domain", err)
		return
	}
	c.PureJSON(http.StatusOK, models.DomainResponse{
		URL:              models.SafeURLString(req.URL),
		Domain:           name,
		IncludeSubdomain: req.IncludeSubdomain,
		Resolved:         req.Resolve,
	})
}

// HashHandler godoc
// @Summary      Hash a URL
// @Description  Returns the MD5 fingerprint of a URL with its http(s) prefix removed, lowercased and transliterated.
// @Tags         URL Manipulation
// @Produce      json
// @Param        url query string true "URL to hash"
// @Success      200 {object} models.HashResponse
// @Failure      400 {object} models.ErrorResponse
// @Router       /url/hash [get]
func (h *URLUtilitiesHandlers) HashHandler(c *gin.Context) {
	rawURL, ok := requireURLQuery(c)
	if !ok {
		return
	}
	c.PureJSON(http.StatusOK, models.HashResponse{
		URL:  models.SafeURLString(rawURL),
		Hash: utils.HashURL(rawURL),
	})
}

// NormalizeHandler godoc
// @Summary      Normalize a URL
// @Description  Rewrites a URL into a syntactically canonical form without any network access.
// @Tags         URL Manipulation
// @Produce      json
// @Param        url query string true "URL to normalize"
// @Success      200 {object} models.NormalizeResponse
// @Failure      400 {object} models.ErrorResponse
// @Router       /url/normalize [get]
func (h *URLUtilitiesHandlers) NormalizeHandler(c *gin.Context) {
	rawURL, ok := requireURLQuery(c)
	if !ok {
		return
	}

	normalized, err := utils.NormalizeURL(rawURL)
	if err != nil {
		h.writeError(c, "Failed to normalize URL", err)
		return
	}
	c.PureJSON(http.StatusOK, models.NormalizeResponse{
		OriginalURL:   models.SafeURLString(rawURL),
		NormalizedURL: models.SafeURLString(normalized),
	})
}

// CleanURLHandler godoc
// @Summary      Clean a URL
// @Description  Removes known tracking parameters from a given URL.
// @Tags         URL Manipulation
// @Accept       json
// @Produce      json
// @Param        urlRequest body models.CleanURLRequest true "URL to clean"
// @Success      200 {object} models.CleanURLResponse
// @Failure      400 {object} models.ErrorResponse
// @Failure      500 {object} models.ErrorResponse
// @Router       /url/clean [post]
func (h *URLUtilitiesHandlers) CleanURLHandler(c *gin.Context) {
	var req models.CleanURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	result, err := utils.CleanURL(req.URL)
	if err != nil {
		h.writeError(c, "Failed to clean URL", err)
		return
	}
	response := models.CleanURLResponse{
		OriginalURL:   models.SafeURLString(req.URL),
		CleanedURL:    models.SafeURLString(result.CleanedURL),
		RemovedParams: result.RemovedParams,
	}
	if len(result.RemovedParams) == 0 {
		response.Message = "No known tracking parameters found to remove."
	}
	c.PureJSON(http.StatusOK, response)
}

// ShortenersHandler godoc
// @Summary      List known shorteners
// @Description  Returns the generic, vanity and historical shortener tables used during resolution.
// @Tags         URL Resolution
// @Produce      json
// @Success      200 {object} models.ShortenersResponse
// @Router       /url/shorteners [get]
func (h *URLUtilitiesHandlers) ShortenersHandler(c *gin.Context) {
	table := h.resolver.Shorteners()
	c.PureJSON(http.StatusOK, models.ShortenersResponse{
		General:    table.General(),
		Vanity:     table.Vanity(),
		Historical: table.Historical(),
	})
}

func requireURLQuery(c *gin.Context) (string, bool) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "url query parameter is required"})
		return "", false
	}
	return rawURL, true
}

// writeError answers 400 for unusable input and 500 for anything else.
func (h *URLUtilitiesHandlers) writeError(c *gin.Context, msg string, err error) {
	if errors.Is(err, utils.ErrInvalidURL) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: msg, Details: err.Error()})
		return
	}
	h.logger.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msg, Details: err.Error()})
}
