package handler

import "strings"

// ErrorDetail is the machine-readable part of every error body.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "plan not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a preferences validation
// failure. The message is extracted from the wrapped domain.ErrValidation.
func validationBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the planner (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}}
}

// exportBody returns an ErrorResponse for a failed PDF export.
func exportBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "export_error", Message: message}}
}

// conflictBody returns an ErrorResponse for an operation that needs state the
// session does not have yet (e.g. exporting before an itinerary exists).
func conflictBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "conflict", Message: message}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "validation error: duration must be between 1 and 30 days" →
// "duration must be between 1 and 30 days"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if idx := strings.Index(msg, "validation error: "); idx >= 0 {
		return msg[idx+len("validation error: "):]
	}
	return msg
}
