package models

// APIResponse é o envelope de todas as respostas HTTP.
type APIResponse struct {
	StatusCode int            `json:"status_code"`
	Message    string         `json:"message"`
	Game       *Game          `json:"game,omitempty"`
	User       *User          `json:"user,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
