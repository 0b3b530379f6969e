package view

// Response envelopes: every failure is {"error": "..."} with a non-2xx
// status, successful mutations are {"success": ...}, and list endpoints
// wrap their rows in a single named field.

type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse carries whatever the endpoint reports on success: a
// bare true, a created record id, or a human-readable confirmation.
type SuccessResponse struct {
	Success any `json:"success"`
}

func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func Success(v any) SuccessResponse {
	return SuccessResponse{Success: v}
}

// TimestampLayout is the wire format for every timestamp the API emits.
const TimestampLayout = "2006-01-02 15:04:05"
