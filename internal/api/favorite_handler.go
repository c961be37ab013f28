package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wooteco-subway/favorite-api/internal/api/middleware"
	"github.com/wooteco-subway/favorite-api/internal/api/shared"
	"github.com/wooteco-subway/favorite-api/internal/service"
)

// FavoriteHandler handles the /me/favorites endpoints. Every route sits
// behind the auth middleware, so the authenticated member is always
// present in the request context.
type FavoriteHandler struct {
	favorites service.FavoriteService
	logger    *slog.Logger
}

// NewFavoriteHandler creates a new FavoriteHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewFavoriteHandler(favorites service.FavoriteService, logger *slog.Logger) *FavoriteHandler {
	if favorites == nil {
		panic("favorites cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoriteHandler{
		favorites: favorites,
		logger:    logger.With(slog.String("component", "favorite_handler")),
	}
}

// Create handles POST /me/favorites.
func (h *FavoriteHandler) Create(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateFavoriteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	favorite, err := h.favorites.Create(r.Context(), member.ID, req.SourceID, req.TargetID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/me/favorites/%d", favorite.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CreateFavoriteResponse{
		ID:       favorite.ID,
		SourceID: favorite.SourceStationID,
		TargetID: favorite.TargetStationID,
	})
}

// List handles GET /me/favorites. A member with no favorites gets an
// empty JSON array.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	details, err := h.favorites.ListDetails(r.Context(), member.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]FavoriteResponse, 0, len(details))
	for _, detail := range details {
		responses = append(responses, NewFavoriteResponse(detail))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// Exists handles GET /me/favorites/from/{sourceId}/to/{targetId}. The
// check is direction-sensitive: a favorite from A to B does not answer
// for B to A.
func (h *FavoriteHandler) Exists(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sourceID, err := pathID(r, "sourceId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid source station id")
		return
	}
	targetID, err := pathID(r, "targetId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid target station id")
		return
	}

	exists, err := h.favorites.Exists(r.Context(), member.ID, sourceID, targetID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ExistsResponse{Exist: exists})
}

// Delete handles DELETE /me/favorites/{favoriteId}. A favorite owned by
// another member is reported as not found.
func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	favoriteID, err := pathID(r, "favoriteId")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid favorite id")
		return
	}

	if err := h.favorites.Delete(r.Context(), member.ID, favoriteID); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a positive int64 route parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return id, nil
}
