package models

// StripHTMLRequest is the body of POST /text/strip-html.
type StripHTMLRequest struct {
	HTML      string   `json:"html" binding:"required" example:"<h1>Hello world</h1>"`
	Simple    bool     `json:"simple"`
	BreakTags []string `json:"break_tags" example:"p,li"`
}

// StripHTMLResponse carries the text left once markup is removed.
type StripHTMLResponse struct {
	Text string `json:"text" example:"Hello world"`
}
