package service

import (
	"context"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"busriya/internal/backend"
	"busriya/internal/domain"
	internalRedis "busriya/internal/redis"
)

// AuthService exchanges credentials for sessions and resolves session
// IDs on later requests. Sessions are the only process-wide shared
// state; they are written by login and logout only.
type AuthService struct {
	core     backend.CoreGateway
	sessions internalRedis.SessionStoreInterface
}

// NewAuthService creates a new AuthService.
func NewAuthService(core backend.CoreGateway, sessions internalRedis.SessionStoreInterface) *AuthService {
	return &AuthService{core: core, sessions: sessions}
}

// Login authenticates against the core service and creates a session
// carrying the access token and the role decoded from it.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	accessToken, err := s.core.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:          uuid.New().String(),
		AccessToken: accessToken,
		Role:        DecodeRole(accessToken),
		CreatedAt:   time.Now(),
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout deletes the session.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Resolve looks up a session by ID.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// DecodeRole extracts the role from the access token's
// "cognito:groups" claim without verifying the signature; the backends
// verify it on every call. A token that cannot be decoded, or that
// carries no groups, yields an empty role: the session holds no
// elevated access.
func DecodeRole(accessToken string) domain.Role {
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		log.Printf("invalid access token: %v", err)
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	groups, ok := claims["cognito:groups"].([]any)
	if !ok || len(groups) == 0 {
		return ""
	}

	role, ok := groups[0].(string)
	if !ok {
		return ""
	}
	return domain.Role(role)
}
