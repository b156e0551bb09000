package dto

// ErrorResponse is the body of every 4xx/5xx response
type ErrorResponse struct {
	Msg string `json:"msg" example:"Server error"`
}

// NewErrorResponse creates an error body
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Msg: msg}
}

// MessageResponse is a plain confirmation body
type MessageResponse struct {
	Msg string `json:"msg" example:"Registration successful"`
}
