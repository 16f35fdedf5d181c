package presenter

import (
	authDTO "github.com/careerlink-team/career-portal/internal/adapter/dto/auth"
	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/usecase/auth"
)

// ToUserResponse converts a PublicUser to its response DTO
func ToUserResponse(u *entities.PublicUser) *authDTO.UserResponse {
	if u == nil {
		return nil
	}

	resp := &authDTO.UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if u.ProfileID != nil {
		id := u.ProfileID.String()
		resp.ProfileID = &id
	}
	return resp
}

// ToAuthResponse converts the usecase auth result to its response DTO
func ToAuthResponse(usecaseResp *auth.AuthResponse) *authDTO.AuthResponse {
	if usecaseResp == nil {
		return nil
	}

	return &authDTO.AuthResponse{
		AccessToken:  usecaseResp.AccessToken,
		RefreshToken: usecaseResp.RefreshToken,
		ExpiresIn:    int(usecaseResp.ExpiresIn),
		TokenType:    "Bearer",
		SessionID:    usecaseResp.SessionID,
		User:         ToUserResponse(usecaseResp.User),
	}
}
