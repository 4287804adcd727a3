package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON shape used by middleware failures (rate limit,
// panic recovery). GraphQL responses are formatted by the graphql layer and
// never pass through here.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
	Meta    interface{}       `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSONError writes a JSON error response with the request id (when present)
// in the meta block.
func JSONError(r *http.Request, w http.ResponseWriter, statusCode int, code string, message string) {
	var meta interface{}
	if requestID := RequestIDFrom(r); requestID != "" {
		meta = map[string]interface{}{"request_id": requestID}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
		},
		Meta: meta,
	})
}
