package api

import "github.com/wooteco-subway/favorite-api/internal/domain"

// RegisterRequest contains the data needed for member registration.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=4,max=72"`
}

// TokenRequest contains the credentials exchanged for an access token.
type TokenRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued access token. TokenType is
// always "bearer".
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// MemberResponse is the public view of a member account. The password
// never appears here.
type MemberResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewMemberResponse converts a domain member to its public view.
func NewMemberResponse(member *domain.Member) MemberResponse {
	return MemberResponse{
		ID:    member.ID,
		Email: member.Email,
		Name:  member.Name,
	}
}

// UpdateMemberRequest contains the mutable member fields.
type UpdateMemberRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=4,max=72"`
}

// CreateFavoriteRequest names the directed station pair to bookmark.
type CreateFavoriteRequest struct {
	SourceID int64 `json:"sourceId" validate:"required,gt=0"`
	TargetID int64 `json:"targetId" validate:"required,gt=0"`
}

// FavoriteResponse is one favorite with both station names resolved.
type FavoriteResponse struct {
	ID         int64  `json:"id"`
	SourceID   int64  `json:"sourceId"`
	TargetID   int64  `json:"targetId"`
	SourceName string `json:"sourceName"`
	TargetName string `json:"targetName"`
}

// NewFavoriteResponse converts a resolved favorite detail to its wire form.
func NewFavoriteResponse(detail domain.FavoriteDetail) FavoriteResponse {
	return FavoriteResponse{
		ID:         detail.ID,
		SourceID:   detail.SourceID,
		TargetID:   detail.TargetID,
		SourceName: detail.SourceName,
		TargetName: detail.TargetName,
	}
}

// CreateFavoriteResponse is returned on favorite creation, before station
// names are resolved.
type CreateFavoriteResponse struct {
	ID       int64 `json:"id"`
	SourceID int64 `json:"sourceId"`
	TargetID int64 `json:"targetId"`
}

// ExistsResponse answers a directed-pair existence check.
type ExistsResponse struct {
	Exist bool `json:"exist"`
}
