// Package httputil provides shared HTTP utilities for consistent response handling.
package httputil

import (
	"encoding/json"
	"net/http"
)

// ProblemType is the type URI carried by every problem-detail body.
const ProblemType = "https://tools.ietf.org/html/rfc2616#section-10"

// Problem titles.
const (
	TitleError         = "An error occurred"
	TitleInternalError = "Internal Server Error"
)

// Problem is a problem-detail error body.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// WriteJSON writes a JSON response with the given status code.
// It sets the Content-Type header to application/json.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteOK writes a 200 OK response with data.
func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// WriteProblem writes a problem-detail body with the given status.
func WriteProblem(w http.ResponseWriter, status int, title, detail string) {
	WriteJSON(w, status, Problem{Type: ProblemType, Title: title, Detail: detail})
}

// WriteNotFound writes a 404 problem with the standard error title.
func WriteNotFound(w http.ResponseWriter, detail string) {
	WriteProblem(w, http.StatusNotFound, TitleError, detail)
}

// WriteInternalError writes the generic 500 problem.
func WriteInternalError(w http.ResponseWriter) {
	WriteProblem(w, http.StatusInternalServerError, TitleInternalError, "The server encountered an unexpected condition")
}
