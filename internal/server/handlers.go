package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"MarketWarRoom/internal/dashboard"
	"MarketWarRoom/internal/indicator"
	"MarketWarRoom/internal/model"
)

type handlers struct {
	asm     *dashboard.Assembler
	symbols []string
}

// writeJSON marshals v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(data)
}

// writeError sends a JSON-formatted error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) listSymbols(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"symbols": h.symbols})
}

func (h *handlers) symbolAnalysis(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(strings.TrimSpace(r.PathValue("symbol")))
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	view, err := h.asm.BuildSymbolView(r.Context(), symbol)
	if err != nil {
		switch {
		case errors.Is(err, indicator.ErrInsufficientData),
			errors.Is(err, model.ErrMalformedSeries):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) sectorHeatmap(w http.ResponseWriter, r *http.Request) {
	view, err := h.asm.BuildHeatmapView(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}
