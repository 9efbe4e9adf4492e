package utils

import (
	"encoding/json"
	"net/http"
)

// Fixed CORS header set. Every response carries it, including errors and
// the preflight answer, so browser clients never hit an opaque failure.
const (
	CORSAllowOrigin  = "*"
	CORSAllowHeaders = "Content-Type,Authorization"
	CORSAllowMethods = "OPTIONS,POST"
)

// ErrorResponse is the body for 400/500 outcomes. ReceivedKeys lists the
// top-level field keys the client actually sent (keys only, never values).
type ErrorResponse struct {
	Message      string   `json:"message"`
	ReceivedKeys []string `json:"receivedKeys,omitempty"`
}

func SetCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", CORSAllowOrigin)
	w.Header().Set("Access-Control-Allow-Headers", CORSAllowHeaders)
	w.Header().Set("Access-Control-Allow-Methods", CORSAllowMethods)
}

// ResponseJSON writes a JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	SetCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, body any) {
	ResponseJSON(w, http.StatusOK, body)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, body any) {
	ResponseJSON(w, http.StatusCreated, body)
}

// ResponsePreflight answers the CORS preflight: 200, headers only.
func ResponsePreflight(w http.ResponseWriter) {
	SetCORSHeaders(w)
	w.WriteHeader(http.StatusOK)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, receivedKeys []string) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{
		Message:      message,
		ReceivedKeys: receivedKeys,
	})
}

// returns 500 Internal Server Error. The underlying error detail is never
// echoed back to the client, only logged.
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{Message: message})
}
