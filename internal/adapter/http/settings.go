package httpadapter

import (
	"net/http"

	"adpacer/internal/core/port"
)

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.catalog.GetSettings(r.Context())
	if err != nil {
		h.writeError(w, r, "get settings", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, s)
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in port.SettingsInput
	if !decodeJSON(w, r, &in) {
		return
	}
	s, err := h.catalog.UpdateSettings(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "update settings", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, s)
}
