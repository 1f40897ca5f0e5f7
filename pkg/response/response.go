// Package response writes the JSON bodies the storefront API speaks.
//
// Success responses carry the entity (or an ad-hoc object) directly; failures
// are always a JSON object with a single "error" or "message" string field
// and an HTTP status code. There is no structured error code enum.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Success sends a 200 with the payload as-is.
func Success(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Created sends a 201 with the payload as-is.
func Created(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusCreated, v)
}

// Error sends {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Message sends {"message": message} with the given status.
// Used where the API's contract keys the string as "message" instead of
// "error" (order not-found, delete confirmations).
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}
