// Package web agrupa el manejo de JSON común a todos los handlers:
// respuestas, envelope de error y decode de requests.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"pet-adoption-api/internal/platform/logger"
)

// ErrorBody es el envelope de todo request fallido.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError clasifica err y escribe el envelope. Los errores internos se
// loguean con detalle y se responden con un mensaje genérico.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind, status := Classify(err)
	log := logger.FromContext(r.Context())

	msg := err.Error()
	if kind == KindInternal {
		msg = "internal error"
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"kind", kind,
			"error", err)
	} else {
		log.Debug("request rejected",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"kind", kind,
			"error", err)
	}

	WriteJSON(w, status, ErrorBody{Error: ErrorDetail{Kind: kind, Message: msg}})
}

// Deleted es el body de un delete exitoso.
type Deleted struct {
	Deleted bool `json:"deleted"`
}
