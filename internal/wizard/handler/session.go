package handler

import (
	"net/http"

	"transferbook/internal/wizard/service"
	httputil "transferbook/pkg/http"
	"transferbook/pkg/logger"
	"transferbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type SessionHandler struct {
	service service.SessionService
	log     *logger.Logger
}

func NewSessionHandler(service service.SessionService, log *logger.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log,
	}
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req service.CreateSessionRequest
	if err := httputil.DecodeJSON(r, &req, true); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	snapshot, err := h.service.Create(r.Context(), req, httputil.PreferredLanguage(r))
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, snapshot); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *SessionHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	snapshot, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}
	h.writeSuccess(w, "GetByID", snapshot)
}

func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.FormUpdate
	if err := httputil.DecodeJSON(r, &update, false); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	snapshot, err := h.service.Update(r.Context(), ps.ByName("id"), update)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}
	h.writeSuccess(w, "Update", snapshot)
}

func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	snapshot, err := h.service.Next(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Next", err)
		return
	}
	h.writeSuccess(w, "Next", snapshot)
}

func (h *SessionHandler) Prev(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	snapshot, err := h.service.Prev(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Prev", err)
		return
	}
	h.writeSuccess(w, "Prev", snapshot)
}

func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	snapshot, err := h.service.Reset(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Reset", err)
		return
	}
	h.writeSuccess(w, "Reset", snapshot)
}

// Submit answers 200 for both notification kinds; only precondition
// violations produce an error status. A failed delivery is marked no-store
// so that resubmitting with the same Idempotency-Key reaches the notifier.
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := h.service.Submit(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Submit", err)
		return
	}
	if !result.Notification.Succeeded() {
		w.Header().Set("Cache-Control", "no-store")
	}
	h.writeSuccess(w, "Submit", result)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *SessionHandler) writeSuccess(w http.ResponseWriter, handler string, data any) {
	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", handler, "operation", "WriteSuccess", "error", err)
	}
}

func (h *SessionHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *SessionHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/sessions", h.Create)
	router.GET("/api/v1/sessions/id/:id", h.GetByID)
	router.PATCH("/api/v1/sessions/id/:id", h.Update)
	router.DELETE("/api/v1/sessions/id/:id", h.Delete)
	router.POST("/api/v1/sessions/id/:id/next", h.Next)
	router.POST("/api/v1/sessions/id/:id/prev", h.Prev)
	router.POST("/api/v1/sessions/id/:id/reset", h.Reset)
	router.POST("/api/v1/sessions/id/:id/submit", h.Submit)
}
