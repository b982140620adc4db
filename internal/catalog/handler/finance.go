package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sciport/internal/catalog/service"
	"sciport/internal/domain"
)

type FinanceHandler struct {
	svc          *service.FinanceService
	logger       *slog.Logger
	requireAdmin func(http.Handler) http.Handler
}

func NewFinanceHandler(svc *service.FinanceService, logger *slog.Logger, requireAdmin func(http.Handler) http.Handler) *FinanceHandler {
	return &FinanceHandler{svc: svc, logger: logger, requireAdmin: requireAdmin}
}

func (h *FinanceHandler) Register(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/projects/{projectId}", h.project)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Post("/projects/{projectId}/history", h.upsertHistory)
		r.Patch("/projects/{projectId}/history", h.upsertHistory)
	})
}

func (h *FinanceHandler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.GetSummary(r.Context(), queryInt(r, "year"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *FinanceHandler) project(w http.ResponseWriter, r *http.Request) {
	fp, err := h.svc.GetProject(r.Context(), chi.URLParam(r, "projectId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fp)
}

func (h *FinanceHandler) upsertHistory(w http.ResponseWriter, r *http.Request) {
	var item domain.FinanceHistoryItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, err)
		return
	}

	fp, err := h.svc.UpsertHistory(r.Context(), chi.URLParam(r, "projectId"), item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fp)
}
