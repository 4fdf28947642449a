package models

// HealthStatus is returned by the health endpoints
type HealthStatus struct {
	Status  string `json:"status" jsonschema:"example=ok"`
	Message string `json:"message,omitempty"`
	Cache   string `json:"cache,omitempty" jsonschema:"example=ok"`
}

// ErrorMessage is the body of every error response
type ErrorMessage struct {
	Message string `json:"message" jsonschema:"example=car ad not found"`
}
