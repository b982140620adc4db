package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sciport/internal/catalog/service"
	"sciport/internal/domain"
)

type ProjectHandler struct {
	svc          *service.ProjectService
	logger       *slog.Logger
	requireAdmin func(http.Handler) http.Handler
}

func NewProjectHandler(svc *service.ProjectService, logger *slog.Logger, requireAdmin func(http.Handler) http.Handler) *ProjectHandler {
	return &ProjectHandler{svc: svc, logger: logger, requireAdmin: requireAdmin}
}

func (h *ProjectHandler) Register(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/filters", h.filters)
	r.Get("/filters-meta", h.filterMeta)
	r.Get("/{id}", h.getByID)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)
		r.Post("/", h.create)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

func (h *ProjectHandler) list(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.List(r.Context(), projectFilters(r), pageParams(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ProjectHandler) filters(w http.ResponseWriter, r *http.Request) {
	options, err := h.svc.GetFilters(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, options)
}

func (h *ProjectHandler) filterMeta(w http.ResponseWriter, r *http.Request) {
	meta, err := h.svc.GetFilterMeta(r.Context(), projectFilters(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

func (h *ProjectHandler) getByID(w http.ResponseWriter, r *http.Request) {
	project, err := h.svc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) create(w http.ResponseWriter, r *http.Request) {
	var input domain.Project
	if err := decodeBody(r, &input); err != nil {
		writeError(w, err)
		return
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProjectHandler) update(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProjectPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ProjectHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
