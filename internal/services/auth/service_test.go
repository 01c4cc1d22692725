package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scorekeep/scorekeep/internal/dependencies/mocks"
	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/services/secret"
	"github.com/scorekeep/scorekeep/internal/services/token"
	"github.com/scorekeep/scorekeep/internal/storage/memory"
	"github.com/scorekeep/scorekeep/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	tokens  *token.Service
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	tokens, err := token.New(token.Config{Secret: "test-secret"}, s.clock)
	s.Require().NoError(err)
	s.tokens = tokens

	s.service = New(s.storage, s.tokens, secret.NewHasher(), s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.NotEmpty(pair.AccessToken)
	s.NotEmpty(pair.RefreshToken)
	s.NotEqual(pair.AccessToken, pair.RefreshToken)
}

func (s *ServiceSuite) TestRegisterPersistsSession() {
	_, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	session, err := s.storage.GetSessionByUserName(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice", session.UserName)
	s.NotEmpty(session.PasswordHash)
	s.NotEqual("password123", session.PasswordHash)
	s.NotEmpty(session.RefreshTokenHash)
	s.False(session.Closed())
}

func (s *ServiceSuite) TestRegisterFailsIfUserNameTaken() {
	_, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice", "different456")
	s.ErrorIs(err, model.ErrUserNameTaken)
}

func (s *ServiceSuite) TestRegisterTokensAreImmediatelyValid() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	identity, err := s.service.Validate(s.ctx, pair.AccessToken)
	s.Require().NoError(err)
	s.Equal("alice", identity.UserName)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	pair, err := s.service.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)
	s.NotEmpty(pair.AccessToken)
	s.NotEmpty(pair.RefreshToken)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "alice", "wrongpassword")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "password123")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginRotatesRefreshTokenHash() {
	first, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.clock.Advance(time.Second)
	_, err = s.service.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	// The registration refresh token no longer matches the stored hash
	_, err = s.service.Refresh(s.ctx, first.RefreshToken)
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginReopensClosedSession() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	identity, err := s.service.Validate(s.ctx, pair.AccessToken)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Logout(s.ctx, identity.SessionID))

	fresh, err := s.service.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	_, err = s.service.Validate(s.ctx, fresh.AccessToken)
	s.NoError(err)
}

// Refresh tests

func (s *ServiceSuite) TestRefreshIssuesNewPair() {
	first, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.clock.Advance(time.Second)
	second, err := s.service.Refresh(s.ctx, first.RefreshToken)
	s.Require().NoError(err)

	s.NotEmpty(second.AccessToken)
	s.NotEmpty(second.RefreshToken)
	s.NotEqual(first.RefreshToken, second.RefreshToken)
}

func (s *ServiceSuite) TestRefreshInvalidatesPresentedToken() {
	first, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.clock.Advance(time.Second)
	_, err = s.service.Refresh(s.ctx, first.RefreshToken)
	s.Require().NoError(err)

	_, err = s.service.Refresh(s.ctx, first.RefreshToken)
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestRefreshConcurrentWithSameToken() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.clock.Advance(time.Second)

	// Both callers may pass the hash check before either rotation
	// lands; the stored hash then matches whichever write finished
	// last, so at most one of the returned pairs stays usable.
	var wg sync.WaitGroup
	pairs := make([]*TokenPair, 2)
	errs := make([]error, 2)
	for i := range pairs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			pairs[i], errs[i] = s.service.Refresh(s.ctx, pair.RefreshToken)
		}(i)
	}
	wg.Wait()

	s.clock.Advance(time.Second)

	live := 0
	for i := range pairs {
		if errs[i] != nil {
			s.ErrorIs(errs[i], model.ErrInvalidCredentials)
			continue
		}
		if _, err := s.service.Refresh(s.ctx, pairs[i].RefreshToken); err == nil {
			live++
		} else {
			s.ErrorIs(err, model.ErrInvalidCredentials)
		}
	}
	s.Equal(1, live)
}

func (s *ServiceSuite) TestRefreshChainStaysValid() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		s.clock.Advance(time.Second)
		pair, err = s.service.Refresh(s.ctx, pair.RefreshToken)
		s.Require().NoError(err)
	}

	identity, err := s.service.Validate(s.ctx, pair.AccessToken)
	s.Require().NoError(err)
	s.Equal("alice", identity.UserName)
}

func (s *ServiceSuite) TestRefreshFailsWithGarbageToken() {
	_, err := s.service.Refresh(s.ctx, "not-a-token")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestRefreshFailsWithAccessToken() {
	// An access token points at the session but does not match the
	// stored refresh hash
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	_, err = s.service.Refresh(s.ctx, pair.AccessToken)
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestRefreshFailsWhenExpired() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.clock.Advance(token.RefreshTokenTTL + time.Hour)

	_, err = s.service.Refresh(s.ctx, pair.RefreshToken)
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestRefreshFailsAfterLogout() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	identity, err := s.service.Validate(s.ctx, pair.AccessToken)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Logout(s.ctx, identity.SessionID))

	_, err = s.service.Refresh(s.ctx, pair.RefreshToken)
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

// Logout tests

func (s *ServiceSuite) TestLogoutClosesSession() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	identity, err := s.service.Validate(s.ctx, pair.AccessToken)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Logout(s.ctx, identity.SessionID))

	session, err := s.storage.GetSession(s.ctx, identity.SessionID)
	s.Require().NoError(err)
	s.True(session.Closed())
}

func (s *ServiceSuite) TestLogoutIsIdempotent() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	identity, err := s.service.Validate(s.ctx, pair.AccessToken)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Logout(s.ctx, identity.SessionID))
	s.NoError(s.service.Logout(s.ctx, identity.SessionID))
}

func (s *ServiceSuite) TestLogoutFailsForUnknownSession() {
	err := s.service.Logout(s.ctx, model.SessionID("no-such-session"))
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Validate tests

func (s *ServiceSuite) TestValidateReturnsIdentity() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	identity, err := s.service.Validate(s.ctx, pair.AccessToken)
	s.Require().NoError(err)
	s.Equal("alice", identity.UserName)
	s.NotEmpty(identity.SessionID)
}

func (s *ServiceSuite) TestValidateFailsWithGarbageToken() {
	_, err := s.service.Validate(s.ctx, "not-a-token")
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *ServiceSuite) TestValidateFailsWhenExpired() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.clock.Advance(token.DefaultAccessTokenTTL + time.Minute)

	_, err = s.service.Validate(s.ctx, pair.AccessToken)
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *ServiceSuite) TestValidateRejectsUnexpiredTokenAfterLogout() {
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	identity, err := s.service.Validate(s.ctx, pair.AccessToken)
	s.Require().NoError(err)
	s.Require().NoError(s.service.Logout(s.ctx, identity.SessionID))

	// The token itself is still cryptographically valid and unexpired
	_, err = s.service.Validate(s.ctx, pair.AccessToken)
	s.ErrorIs(err, model.ErrInvalidToken)
}

func (s *ServiceSuite) TestValidateAccessTokenSurvivesRefresh() {
	// Refresh rotates the refresh hash but earlier access tokens stay
	// valid until they expire
	pair, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.clock.Advance(time.Second)
	_, err = s.service.Refresh(s.ctx, pair.RefreshToken)
	s.Require().NoError(err)

	_, err = s.service.Validate(s.ctx, pair.AccessToken)
	s.NoError(err)
}
