package models

// ErrorResponse is the uniform error wire shape: a single detail string,
// regardless of whether the failure came from the backend or from this service.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// APIError is returned by the transaction client for any non-validation
// failure. Detail is always non-empty. StatusCode holds the backend's HTTP
// status when a response was received, and is zero for network-level failures.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// NewAPIError builds an APIError, substituting fallback when the backend gave
// no usable detail message.
func NewAPIError(statusCode int, detail, fallback string) *APIError {
	if detail == "" {
		detail = fallback
	}
	return &APIError{StatusCode: statusCode, Detail: detail}
}
