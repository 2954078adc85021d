package dto

// OKResponse acknowledges a delete.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
