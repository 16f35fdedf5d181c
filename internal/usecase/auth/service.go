package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/careerlink-team/career-portal/internal/domain/entities"
	"github.com/careerlink-team/career-portal/internal/domain/repositories"
	"github.com/careerlink-team/career-portal/internal/infrastructure/cache"
	usecaseErrors "github.com/careerlink-team/career-portal/internal/usecase/errors"
	"github.com/careerlink-team/career-portal/pkg/jwt"
)

// Service handles password authentication and session management. Sessions
// live in the cache store keyed by session id; the JWT carries the session id
// so tokens can be revoked server-side on logout.
type Service struct {
	userRepo   repositories.UserRepository
	sessions   cache.Store
	jwtManager *jwt.Manager
}

// NewService creates a new auth service
func NewService(userRepo repositories.UserRepository, sessions cache.Store, jwtManager *jwt.Manager) *Service {
	return &Service{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtManager: jwtManager,
	}
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	User         *entities.PublicUser `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	ExpiresIn    int64                `json:"expires_in"`
	SessionID    string               `json:"session_id"`
}

// session is the payload stored in the cache per active session. RefreshHash
// is the digest of the currently valid refresh token; rotation replaces it.
type session struct {
	UserID      uuid.UUID         `json:"user_id"`
	Email       string            `json:"email"`
	Role        entities.UserRole `json:"role"`
	ProfileID   *uuid.UUID        `json:"profile_id,omitempty"`
	RefreshHash string            `json:"refresh_hash"`
	CreatedAt   time.Time         `json:"created_at"`
}

func sessionKey(id string) string {
	return "session:" + id
}

// refreshKey indexes a session by its refresh token digest so Refresh can
// locate the session without the client resending the session id.
func refreshKey(hash string) string {
	return "refresh:" + hash
}

// Login verifies credentials, opens a session and issues an access token.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			// Same error as a wrong password, so login responses do not
			// reveal which accounts exist.
			return nil, usecaseErrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return nil, usecaseErrors.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, usecaseErrors.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	refreshHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}

	sess := session{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
		ProfileID:   user.ProfileID,
		RefreshHash: refreshHash,
		CreatedAt:   time.Now(),
	}
	if err := s.storeSession(ctx, sessionID, sess); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role), sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return &AuthResponse{
		User:         user.ToPublic(),
		AccessToken:  token,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
		SessionID:    sessionID,
	}, nil
}

// storeSession writes the session payload and the refresh-token index entry,
// both expiring with the refresh lifetime.
func (s *Service) storeSession(ctx context.Context, sessionID string, sess session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	ttl := s.jwtManager.GetRefreshExpiry()
	if err := s.sessions.Set(ctx, sessionKey(sessionID), string(payload), ttl); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if err := s.sessions.Set(ctx, refreshKey(sess.RefreshHash), sessionID, ttl); err != nil {
		return fmt.Errorf("failed to index refresh token: %w", err)
	}
	return nil
}

// Refresh exchanges a valid refresh token for a fresh access token. The
// refresh token is rotated: the presented one stops working and the response
// carries its replacement. The session id is preserved, so access tokens
// issued before and after the refresh revoke together on logout.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, usecaseErrors.ErrTokenInvalid
	}
	refreshHash, err := s.jwtManager.HashToken(refreshToken)
	if err != nil {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	sessionID, err := s.sessions.Get(ctx, refreshKey(refreshHash))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, usecaseErrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	raw, err := s.sessions.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, usecaseErrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var sess session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if sess.UserID != userID || sess.RefreshHash != refreshHash {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, usecaseErrors.ErrUserInactive
	}

	newRefresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	newHash, err := s.jwtManager.HashToken(newRefresh)
	if err != nil {
		return nil, fmt.Errorf("failed to hash refresh token: %w", err)
	}
	if err := s.sessions.Delete(ctx, refreshKey(refreshHash)); err != nil {
		return nil, fmt.Errorf("failed to retire refresh token: %w", err)
	}
	sess.RefreshHash = newHash
	if err := s.storeSession(ctx, sessionID, sess); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, string(user.Role), sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		User:         user.ToPublic(),
		AccessToken:  token,
		RefreshToken: newRefresh,
		ExpiresIn:    int64(s.jwtManager.GetAccessExpiry().Seconds()),
		SessionID:    sessionID,
	}, nil
}

// Principal identifies the authenticated caller of a request. ProfileID links
// graduate and company accounts to their directory record.
type Principal struct {
	UserID    uuid.UUID
	Email     string
	Role      entities.UserRole
	ProfileID *uuid.UUID
	SessionID string
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p.Role == entities.RoleAdmin
}

// Authenticate validates an access token and checks that its session is
// still open.
func (s *Service) Authenticate(ctx context.Context, token string) (*Principal, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	raw, err := s.sessions.Get(ctx, sessionKey(claims.SessionID))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, usecaseErrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	if sess.UserID != claims.UserID {
		return nil, usecaseErrors.ErrTokenInvalid
	}

	return &Principal{
		UserID:    sess.UserID,
		Email:     sess.Email,
		Role:      sess.Role,
		ProfileID: sess.ProfileID,
		SessionID: claims.SessionID,
	}, nil
}

// Logout closes the session, revoking every token bound to it, refresh
// token included.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if raw, err := s.sessions.Get(ctx, sessionKey(sessionID)); err == nil {
		var sess session
		if err := json.Unmarshal([]byte(raw), &sess); err == nil && sess.RefreshHash != "" {
			if err := s.sessions.Delete(ctx, refreshKey(sess.RefreshHash)); err != nil {
				return fmt.Errorf("failed to retire refresh token: %w", err)
			}
		}
	}
	if err := s.sessions.Delete(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CurrentUser loads the full account for an authenticated principal.
func (s *Service) CurrentUser(ctx context.Context, principal *Principal) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, usecaseErrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, usecaseErrors.ErrUserInactive
	}
	return user, nil
}

// HashPassword returns the bcrypt hash used for stored credentials.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
