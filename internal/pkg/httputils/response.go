package httputils

import (
	"encoding/json"
	"log"
	"net/http"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// ErrorDetail is the structured error body used for domain failures.
// EntityID is a number for not-found errors and the duplicate value for
// conflicts.
type ErrorDetail struct {
	Type       string `json:"type"`
	EntityName string `json:"entity_name"`
	EntityID   any    `json:"entity_id"`
}

type DetailResponse struct {
	Detail ErrorDetail `json:"detail"`
}

func ResponseError(w http.ResponseWriter, errorCode int, errorMessage string) {
	ResponseJSON(w, errorCode, ErrorResponse{
		Message: errorMessage,
	})
}

func ResponseDetail(w http.ResponseWriter, statusCode int, detail ErrorDetail) {
	ResponseJSON(w, statusCode, DetailResponse{Detail: detail})
}

func ResponseJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}
