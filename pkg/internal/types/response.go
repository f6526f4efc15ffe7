// Package types holds the request and response shapes of the HTTP API.
package types

// ListResponse wraps collection results.
type ListResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

// DataResponse wraps a single result.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// MessageResponse wraps mutations that carry a human readable message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the failure envelope. Errors carries field level
// validation messages, Error carries an upstream failure detail.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Path    string   `json:"path,omitempty"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// WelcomeResponse is served at the root path.
type WelcomeResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
