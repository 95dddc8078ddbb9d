package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/linkutils/models"
	"github.com/vit0-9/linkutils/pkg/utils"
)

type TextHandlers struct{}

func NewTextHandlers() *TextHandlers {
	return &TextHandlers{}
}

// StripHTMLHandler godoc
// @Summary      Strip HTML
// @Description  Extracts the readable text of an HTML document, dropping scripts, styles, menus and headers. Set simple to strip tags with regular expressions instead of parsing.
// @Tags         Text
// @Accept       json
// @Produce      json
// @Param        request body models.StripHTMLRequest true "HTML to strip"
// @Success      200 {object} models.StripHTMLResponse
// @Failure      400 {object} models.ErrorResponse
// @Router       /text/strip-html [post]
func (h *TextHandlers) StripHTMLHandler(c *gin.Context) {
	var req models.StripHTMLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}
	c.PureJSON(http.StatusOK, models.StripHTMLResponse{
		Text: utils.StripHTML(req.HTML, req.Simple, req.BreakTags),
	})
}
