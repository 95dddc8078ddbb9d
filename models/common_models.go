package models

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error   string `json:"error" example:"url query parameter is required"`
	Details string `json:"details,omitempty"`
}

// HealthResponse reports liveness and uptime.
type HealthResponse struct {
	Status string `json:"status" example:"UP"`
	Uptime string `json:"uptime" example:"1h2m3s"`
}
