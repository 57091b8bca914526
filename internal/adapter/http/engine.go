package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpacer/internal/core/port"
)

// handleRunRoutine runs one pass of the routine named in the path and
// returns its statistics. A pass already in progress yields 409.
func (h *Handler) handleRunRoutine(w http.ResponseWriter, r *http.Request) {
	routine := port.Routine(chi.URLParam(r, "routine"))
	known := false
	for _, rt := range port.Routines {
		known = known || rt == routine
	}
	if !known {
		http.Error(w, "unknown routine", http.StatusNotFound)
		return
	}

	stats, err := h.runner.RunOnce(r.Context(), routine)
	if err != nil {
		h.writeError(w, r, "run "+string(routine), err)
		return
	}
	h.logger.Info("manual pass completed", slog.String("routine", string(routine)), slog.Int("changed", stats.Changed))
	writeJSON(w, h.logger, http.StatusOK, stats)
}
