package services

import (
	"context"
	"fmt"
	"log/slog"

	"chitchat/contract"
	"chitchat/domain/chat"
)

// AuthService wraps the auth lifecycle endpoints. The credential
// contract is opaque to the sync core beyond success/failure; on
// success the identity is persisted so the next start skips the login
// flow.
type AuthService struct {
	log     *slog.Logger
	api     contract.IRestAPI
	session contract.ISessionStore
}

func NewAuthService(log *slog.Logger, api contract.IRestAPI, session contract.ISessionStore) *AuthService {
	return &AuthService{log: log, api: api, session: session}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (chat.User, error) {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return chat.User{}, err
	}
	if err := s.session.Save(user); err != nil {
		// The server accepted the login; a broken local save only costs
		// a re-login next start.
		s.log.Warn("Could not persist session", "err", err)
	}
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	return s.api.Register(ctx, username, email, password)
}

// Logout tells the server, then drops local credentials either way. The
// stream is closed by the caller as part of session teardown.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	err := s.api.Logout(ctx, userID)
	if clearErr := s.session.Clear(); clearErr != nil {
		s.log.Warn("Could not clear session", "err", clearErr)
	}
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
