package httpadapter

import (
	"net/http"

	"adpacer/internal/core/port"
)

func (h *Handler) handleListAds(w http.ResponseWriter, r *http.Request) {
	ads, err := h.catalog.ListAds(r.Context())
	if err != nil {
		h.writeError(w, r, "list ads", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, ads)
}

func (h *Handler) handleGetAd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	ad, err := h.catalog.GetAd(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get ad", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, ad)
}

// handleCreateAd creates an ad from a JSON body with brand_id, name and an
// RFC 3339 start_time/end_time window. The ad starts inactive; the next
// activation pass decides whether it runs.
func (h *Handler) handleCreateAd(w http.ResponseWriter, r *http.Request) {
	var in port.AdInput
	if !decodeJSON(w, r, &in) {
		return
	}
	ad, err := h.catalog.CreateAd(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "create ad", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, ad)
}

func (h *Handler) handleUpdateAd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in port.AdInput
	if !decodeJSON(w, r, &in) {
		return
	}
	ad, err := h.catalog.UpdateAd(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, "update ad", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, ad)
}

func (h *Handler) handleDeleteAd(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.DeleteAd(r.Context(), id); err != nil {
		h.writeError(w, r, "delete ad", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
