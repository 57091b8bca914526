package httpadapter

import (
	"net/http"

	"adpacer/internal/core/port"
)

func (h *Handler) handleListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.ListBrands(r.Context())
	if err != nil {
		h.writeError(w, r, "list brands", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, brands)
}

// handleGetBrand returns the brand with its ads nested.
func (h *Handler) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	brand, err := h.catalog.GetBrand(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get brand", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, brand)
}

func (h *Handler) handleCreateBrand(w http.ResponseWriter, r *http.Request) {
	var in port.BrandInput
	if !decodeJSON(w, r, &in) {
		return
	}
	brand, err := h.catalog.CreateBrand(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "create brand", err)
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, brand)
}

func (h *Handler) handleUpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in port.BrandInput
	if !decodeJSON(w, r, &in) {
		return
	}
	brand, err := h.catalog.UpdateBrand(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, "update brand", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, brand)
}

func (h *Handler) handleDeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.DeleteBrand(r.Context(), id); err != nil {
		h.writeError(w, r, "delete brand", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
