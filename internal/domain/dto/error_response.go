package dto

// ErrorResponse is the JSON error body returned by all endpoints.
//
// The API contract exposes a single "detail" field carrying a human-readable
// message, e.g. {"detail": "No data found for ticker 'AAPL' in the specified
// date range"}.
type ErrorResponse struct {
	Detail string `json:"detail" example:"internal server error"`
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error. When err is non-nil its message is appended to detail.
func NewErrorResponse(message string, err error) ErrorResponse {
	if err != nil {
		return ErrorResponse{Detail: message + ": " + err.Error()}
	}
	return ErrorResponse{Detail: message}
}

// Error implements the error interface so the response type can travel
// through gin's error list.
func (e ErrorResponse) Error() string { return e.Detail }
