package models

import "github.com/vit0-9/linkutils/pkg/utils"

// CleanURLRequest is the body of POST /url/clean.
type CleanURLRequest struct {
	URL string `json:"url" binding:"required" example:"https://example.com/post?utm_source=google&id=7"`
}

// CleanURLResponse lists the tracking parameters removed from a URL.
type CleanURLResponse struct {
	OriginalURL   SafeURLString            `json:"original_url" example:"https://example.com/post?utm_source=google&id=7"`
	CleanedURL    SafeURLString            `json:"cleaned_url" example:"https://example.com/post?id=7"`
	RemovedParams []utils.RemovedParamInfo `json:"removed_params"`
	Message       string                   `json:"message,omitempty" example:"No known tracking parameters found to remove."`
}
