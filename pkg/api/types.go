package api

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime"`
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Status    string  `json:"status"`
	Port      int     `json:"port"`
	Uptime    float64 `json:"uptime"`
	BookCount int     `json:"bookCount"`
	Version   string  `json:"version"`
}
