package handler

import (
	"errors"
	"net/http"
	"strings"

	"transferbook/internal/places"
	apperrors "transferbook/pkg/errors"
	httputil "transferbook/pkg/http"
	"transferbook/pkg/logger"
	"transferbook/pkg/middleware"
	"transferbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const maxQueryLength = 200

type SearchResponse struct {
	Query      string            `json:"query"`
	Candidates []model.Candidate `json:"candidates"`
}

type PlaceHandler struct {
	service places.PlaceService
	log     *logger.Logger
}

func NewPlaceHandler(service places.PlaceService, log *logger.Logger) *PlaceHandler {
	return &PlaceHandler{
		service: service,
		log:     log,
	}
}

// Search debounces per session; without a session parameter the client
// address is the debounce key.
func (h *PlaceHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	q := strings.TrimSpace(query.Get("q"))
	if len(q) > maxQueryLength {
		h.writeError(w, "Search", apperrors.InvalidInput("query parameter 'q' is too long"))
		return
	}

	key := query.Get("session")
	if key == "" {
		key = middleware.ClientIP(r)
	}

	candidates, err := h.service.Search(r.Context(), key, q)
	if err != nil {
		h.writeError(w, "Search", h.mapError(err))
		return
	}
	if candidates == nil {
		candidates = []model.Candidate{}
	}

	if err := httputil.WriteSuccess(w, SearchResponse{Query: q, Candidates: candidates}); err != nil {
		h.log.Error("failed to write success response", "handler", "Search", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PlaceHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	placeID := ps.ByName("placeId")

	place, err := h.service.Resolve(r.Context(), placeID)
	if err != nil {
		h.writeError(w, "GetByID", h.mapError(err))
		return
	}

	if err := httputil.WriteSuccess(w, place); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *PlaceHandler) mapError(err error) error {
	switch {
	case errors.Is(err, places.ErrSuperseded):
		return apperrors.Conflict("Search superseded by a newer query").WithCause(err)
	case errors.Is(err, places.ErrPlaceNotFound):
		return apperrors.New(apperrors.CodeNotFound, "Place not found", http.StatusNotFound).WithCause(err)
	case errors.Is(err, places.ErrLookupFailed):
		h.log.Warn("Place lookup failed", "error", err)
		return apperrors.Unavailable("places")
	default:
		return err
	}
}

func (h *PlaceHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *PlaceHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/places/search", h.Search)
	router.GET("/api/v1/places/id/:placeId", h.GetByID)
}
