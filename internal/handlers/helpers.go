package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"zoo-visitor-platform/internal/models"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeUnauthorized writes the 401 body clients key their login redirect on
func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]string{
		"error": "authentication required",
		"code":  "UNAUTHORIZED",
	})
}

// writeFieldErrors writes a 422 with per-field validation messages
func writeFieldErrors(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error":  "validation failed",
		"fields": fields,
	})
}

// decodeJSON parses a request body into dst
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeServiceError maps service-layer errors to HTTP responses
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError

	switch {
	case errors.Is(err, models.ErrUnauthorized):
		writeUnauthorized(w)
	case errors.As(err, &verr):
		writeFieldErrors(w, verr.Fields)
	case errors.Is(err, models.ErrPaymentMethodNotFound),
		errors.Is(err, models.ErrArticleNotFound),
		errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrTicketNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrCheckoutInFlight):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrServiceUnavailable):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusBadGateway, "upstream service error")
	}
}
