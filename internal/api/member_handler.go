package api

import (
	"log/slog"
	"net/http"

	"github.com/wooteco-subway/favorite-api/internal/api/middleware"
	"github.com/wooteco-subway/favorite-api/internal/api/shared"
	"github.com/wooteco-subway/favorite-api/internal/service"
)

// MemberHandler handles member registration, login, and the /me profile
// endpoints.
type MemberHandler struct {
	members service.MemberService
	logger  *slog.Logger
}

// NewMemberHandler creates a new MemberHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewMemberHandler(members service.MemberService, logger *slog.Logger) *MemberHandler {
	if members == nil {
		panic("members cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MemberHandler{
		members: members,
		logger:  logger.With(slog.String("component", "member_handler")),
	}
}

// Register handles POST /members.
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	member, err := h.members.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, NewMemberResponse(member))
}

// IssueToken handles POST /oauth/token. Valid credentials produce a
// bearer access token; an unknown email and a wrong password fail
// identically.
func (h *MemberHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, err := h.members.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// GetMe handles GET /me.
func (h *MemberHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewMemberResponse(member))
}

// UpdateMe handles PATCH /me.
func (h *MemberHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateMemberRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.members.Update(r.Context(), member.ID, req.Name, req.Password); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	updated, err := h.members.GetByID(r.Context(), member.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewMemberResponse(updated))
}

// DeleteMe handles DELETE /me. The member's favorites go with the account.
func (h *MemberHandler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	member, ok := middleware.MemberFromRequest(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.members.Delete(r.Context(), member.ID); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
