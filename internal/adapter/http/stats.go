package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"

	"adpacer/internal/adapter/report"
	"adpacer/internal/core/domain"
)

// handleAdSpend returns the ad's window split into days, capped at now.
func (h *Handler) handleAdSpend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	lines, err := h.catalog.AdSpendProjection(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "ad spend", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, lines)
}

// handleAdSpendRecords returns the AdSpend rows written by the accrual
// routine.
func (h *Handler) handleAdSpendRecords(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rows, err := h.catalog.AdSpendRecords(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "ad spend records", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, rows)
}

// handleBrandDailySpend returns the brand's projected spend per date. With
// a `date` query parameter (YYYY-MM-DD) it returns that single date, zero
// when nothing ran.
func (h *Handler) handleBrandDailySpend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if s := r.URL.Query().Get("date"); s != "" {
		date, err := domain.ParseDate(s)
		if err != nil {
			http.Error(w, "invalid 'date', want YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		line, err := h.catalog.BrandSpendOn(r.Context(), id, date)
		if err != nil {
			h.writeError(w, r, "brand daily spend", err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, line)
		return
	}
	lines, err := h.catalog.BrandDailySpend(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "brand daily spend", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, lines)
}

// handleBrandMonthlySpend is handleBrandDailySpend per month, with an
// optional `month` query parameter (YYYY-MM).
func (h *Handler) handleBrandMonthlySpend(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if s := r.URL.Query().Get("month"); s != "" {
		month, err := domain.ParseYearMonth(s)
		if err != nil {
			http.Error(w, "invalid 'month', want YYYY-MM", http.StatusBadRequest)
			return
		}
		line, err := h.catalog.BrandSpendIn(r.Context(), id, month)
		if err != nil {
			h.writeError(w, r, "brand monthly spend", err)
			return
		}
		writeJSON(w, h.logger, http.StatusOK, line)
		return
	}
	lines, err := h.catalog.BrandMonthlySpend(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "brand monthly spend", err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, lines)
}

// handleBrandSpendExport serves both spend reports as an xlsx download.
func (h *Handler) handleBrandSpendExport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	brand, err := h.catalog.GetBrand(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "export brand spend", err)
		return
	}
	daily, err := h.catalog.BrandDailySpend(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "export brand spend", err)
		return
	}
	monthly, err := h.catalog.BrandMonthlySpend(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "export brand spend", err)
		return
	}
	data, err := report.SpendWorkbook(brand.Brand, daily, monthly)
	if err != nil {
		h.writeError(w, r, "export brand spend", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename(brand.Brand)))
	if _, err = w.Write(data); err != nil {
		h.logger.Error("write export error", slog.Any("error", err))
	}
}
