package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aulrahman/storyshare/internal/adapter"
	"github.com/aulrahman/storyshare/internal/connectivity"
	"github.com/aulrahman/storyshare/internal/logger"
	"github.com/aulrahman/storyshare/internal/store"
	"github.com/aulrahman/storyshare/models"
)

type authService struct {
	store   *store.Store
	api     adapter.StoryAPI
	monitor connectivity.Monitor
	logger  *logger.Logger
}

// NewAuthService constructs an AuthService. The bearer token obtained on
// login is persisted to the local store so a restarted client can resume its
// session without re-authenticating.
func NewAuthService(st *store.Store, api adapter.StoryAPI, monitor connectivity.Monitor, log *logger.Logger) AuthService {
	return &authService{store: st, api: api, monitor: monitor, logger: log}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (models.APIResponse, error) {
	if !s.monitor.IsOnline() {
		return models.APIResponse{}, ErrOffline
	}

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return models.APIResponse{}, fmt.Errorf("register: %w", err)
	}
	return resp, nil
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if !s.monitor.IsOnline() {
		return models.LoginResult{}, ErrOffline
	}

	result, err := s.api.Login(ctx, req)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login: %w", err)
	}

	session := models.Session{
		Token:      result.Token,
		UserID:     result.UserID,
		Name:       result.Name,
		LoggedInAt: time.Now().UTC(),
	}
	if err = s.store.SaveSession(session); err != nil {
		// The login itself succeeded; a failed save only costs session
		// restore on the next start.
		s.logger.Error().Err(err).Msg("failed to persist session")
	}

	return result, nil
}

func (s *authService) Restore(_ context.Context) error {
	session, err := s.store.Session()
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if session == nil {
		return nil
	}

	s.api.SetToken(session.Token)
	s.logger.Debug().Str("user_id", session.UserID).Msg("session restored")
	return nil
}

func (s *authService) Logout(_ context.Context) error {
	s.api.SetToken("")
	if err := s.store.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
