package handlers

import (
	"net/http"

	"zoo-visitor-platform/internal/services"
)

// WidgetHandler serves the homepage weather widget and the visitor assistant
type WidgetHandler struct {
	weather   services.WeatherAPI
	assistant services.AssistantAPI
}

// NewWidgetHandler creates a new widget handler
func NewWidgetHandler(weather services.WeatherAPI, assistant services.AssistantAPI) *WidgetHandler {
	return &WidgetHandler{
		weather:   weather,
		assistant: assistant,
	}
}

// Weather returns the current conditions at the zoo
func (h *WidgetHandler) Weather(w http.ResponseWriter, r *http.Request) {
	report, err := h.weather.Forecast(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// AskAssistant answers a single visitor question about the zoo's animals
func (h *WidgetHandler) AskAssistant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.assistant.Ask(r.Context(), req.Question)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}
