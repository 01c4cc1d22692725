package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scorekeep/scorekeep/internal/dependencies/clock"
	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/services/secret"
	"github.com/scorekeep/scorekeep/internal/services/token"
	"github.com/scorekeep/scorekeep/internal/storage"
)

// TokenPair is an access/refresh token pair issued on register, login
// and refresh
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Identity describes the authenticated caller behind a bearer token
type Identity struct {
	SessionID model.SessionID
	UserName  string
}

// Service orchestrates session registration, credential verification,
// token rotation and logout.
//
// Each session moves Anonymous -> Active -> Closed. Register creates it
// Active; login and refresh keep it Active while rotating the stored
// refresh-token hash; logout clears the hash, closing the session. A
// closed session rejects refresh and bearer validation even for tokens
// that are cryptographically valid and unexpired.
type Service struct {
	storage storage.Storage
	tokens  *token.Service
	hasher  *secret.Hasher
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new auth Service
func New(store storage.Storage, tokens *token.Service, hasher *secret.Hasher, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		tokens:  tokens,
		hasher:  hasher,
		clock:   clk,
		logger:  logger,
	}
}

// Register creates a new session for an unused user name and returns
// its first token pair
func (s *Service) Register(ctx context.Context, userName, password string) (*TokenPair, error) {
	_, err := s.storage.GetSessionByUserName(ctx, userName)
	if err == nil {
		return nil, model.ErrUserNameTaken
	}
	if !errors.Is(err, model.ErrSessionNotFound) {
		return nil, err
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &model.Session{
		ID:           model.SessionID(uuid.NewString()),
		UserName:     userName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	pair, err := s.issueTokens(ctx, session)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session registered", slog.String("session_id", string(session.ID)))
	return pair, nil
}

// Login verifies credentials and issues a fresh token pair, rotating
// the stored refresh-token hash.
//
// An unknown user name and a wrong password produce the same error so
// responses carry no user-enumeration signal.
func (s *Service) Login(ctx context.Context, userName, password string) (*TokenPair, error) {
	session, err := s.storage.GetSessionByUserName(ctx, userName)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(password, session.PasswordHash) {
		return nil, model.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, session)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session logged in", slog.String("session_id", string(session.ID)))
	return pair, nil
}

// Refresh exchanges a live refresh token for a new pair and rotates
// the stored hash, invalidating the presented token.
//
// Every failure mode collapses to ErrInvalidCredentials: bad signature,
// expiry, missing session, closed session, and a stale token whose hash
// no longer matches after rotation.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	session, err := s.storage.GetSession(ctx, claims.SessionID())
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if session.Closed() {
		return nil, model.ErrInvalidCredentials
	}

	if !s.hasher.Compare(refreshToken, session.RefreshTokenHash) {
		return nil, model.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, session)
	if err != nil {
		return nil, err
	}

	s.logger.Info("session refreshed", slog.String("session_id", string(session.ID)))
	return pair, nil
}

// Logout closes the session by clearing its refresh-token hash. The
// session row itself remains; logging out an already closed session
// succeeds.
func (s *Service) Logout(ctx context.Context, sessionID model.SessionID) error {
	session, err := s.storage.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	session.RefreshTokenHash = ""
	session.UpdatedAt = s.clock.Now()
	if err := s.storage.SaveSession(ctx, session); err != nil {
		return err
	}

	s.logger.Info("session logged out", slog.String("session_id", string(session.ID)))
	return nil
}

// Validate checks a bearer access token against current session state.
// A well-formed unexpired token is still rejected once the owning
// session has been closed.
func (s *Service) Validate(ctx context.Context, accessToken string) (*Identity, error) {
	claims, err := s.tokens.Verify(accessToken)
	if err != nil {
		return nil, model.ErrInvalidToken
	}

	session, err := s.storage.GetSession(ctx, claims.SessionID())
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, model.ErrInvalidToken
		}
		return nil, err
	}

	if session.Closed() {
		return nil, model.ErrInvalidToken
	}

	return &Identity{
		SessionID: session.ID,
		UserName:  session.UserName,
	}, nil
}

// issueTokens mints an access/refresh pair and persists the hash of
// the new refresh token, invalidating any previous one. Lookup and
// update are not transactional: two concurrent refreshes with the same
// token can both pass the hash check, and the last write wins. The
// earlier pair's refresh token is dead either way.
func (s *Service) issueTokens(ctx context.Context, session *model.Session) (*TokenPair, error) {
	accessToken, err := s.tokens.SignAccess(session.ID, session.UserName)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.tokens.SignRefresh(session.ID, session.UserName)
	if err != nil {
		return nil, err
	}

	refreshHash, err := s.hasher.Hash(refreshToken)
	if err != nil {
		return nil, err
	}

	session.RefreshTokenHash = refreshHash
	session.UpdatedAt = s.clock.Now()
	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
