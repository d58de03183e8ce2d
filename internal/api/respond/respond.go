// Package respond writes the API response envelope shared by every
// endpoint: {success, data, error, message, meta}.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

// Response is the envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// JSON writes an envelope with the given HTTP status.
func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

// OK writes a 200 success envelope.
func OK(w http.ResponseWriter, data interface{}, message string) {
	JSON(w, http.StatusOK, Response{Success: true, Data: data, Message: message})
}

// OKMeta writes a 200 success envelope with metadata.
func OKMeta(w http.ResponseWriter, data interface{}, message string, meta interface{}) {
	JSON(w, http.StatusOK, Response{Success: true, Data: data, Message: message, Meta: meta})
}

// Created writes a 201 success envelope.
func Created(w http.ResponseWriter, data interface{}, message string) {
	JSON(w, http.StatusCreated, Response{Success: true, Data: data, Message: message})
}

// Fail writes a failure envelope with the given HTTP status.
func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, Response{Success: false, Error: err.Error()})
}
