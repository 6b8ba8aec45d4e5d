// Package httpx holds the JSON envelope shared by every handler:
// {status:"success", data} | {status:"fail", message} | {status:"error", message}.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/dagangcerdas-backend/internal/apperr"
	"github.com/rs/zerolog/hlog"
)

type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Success writes {status:"success", data}.
func Success(w http.ResponseWriter, status int, data interface{}) {
	Respond(w, status, envelope{Status: "success", Data: data})
}

// Fail writes a client error {status:"fail", message}.
func Fail(w http.ResponseWriter, status int, message string) {
	Respond(w, status, envelope{Status: "fail", Message: message})
}

// Error writes a server error {status:"error", message}.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, envelope{Status: "error", Message: message})
}

// Decode reads a JSON request body into dst, answering 400 on malformed input.
func Decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Fail(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// WriteError maps err onto the envelope. serverMsg replaces the message of
// unexpected errors so internals never leak to clients.
func WriteError(w http.ResponseWriter, r *http.Request, err error, serverMsg string) {
	var validation *apperr.ValidationError
	var notFound *apperr.NotFoundError
	switch {
	case errors.As(err, &validation):
		Fail(w, http.StatusBadRequest, validation.Message)
	case errors.As(err, &notFound):
		Fail(w, http.StatusNotFound, notFound.Error())
	default:
		hlog.FromRequest(r).Error().Err(err).Msg(serverMsg)
		Error(w, http.StatusInternalServerError, serverMsg)
	}
}

// Message writes {status:"success", message} for operations without a payload.
func Message(w http.ResponseWriter, status int, message string) {
	Respond(w, status, envelope{Status: "success", Message: message})
}
