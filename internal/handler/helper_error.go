package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wmsdemo/wms/pkg/model"
	"github.com/wmsdemo/wms/pkg/port"
)

func WriteError(w http.ResponseWriter, status int, reason string) {
	statusText := strings.ToLower(http.StatusText(status))
	statusText = strings.ReplaceAll(statusText, " ", "_")
	statusText = strings.ReplaceAll(statusText, "'", "")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{ // nolint: errcheck
		Error:  statusText,
		Reason: reason,
	})
}

// WriteControllerError maps controller errors to status codes
func WriteControllerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalid), errors.Is(err, port.ErrInvalidQuery):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrTaskNotPending):
		WriteError(w, http.StatusConflict, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) // nolint: errcheck
}
