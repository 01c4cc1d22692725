package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/scorekeep/scorekeep/internal/dependencies/clock"
	"github.com/scorekeep/scorekeep/internal/model"
)

// RefreshTokenTTL is fixed at 7 days and is not configurable
const RefreshTokenTTL = 604800 * time.Second

// DefaultAccessTokenTTL is used when no TTL is configured
const DefaultAccessTokenTTL = 3600 * time.Second

// Claims is the payload carried by both access and refresh tokens.
// The two token kinds share one secret and one shape; nothing in the
// payload says which endpoint a token was minted for. The stored
// refresh-token hash is what keeps an access token from being useful
// at the refresh endpoint in practice, but the codec itself does not
// distinguish them.
type Claims struct {
	UserName string `json:"user_name"`
	jwt.RegisteredClaims
}

// Service signs and verifies compact session tokens
type Service struct {
	secret         []byte
	accessTokenTTL time.Duration
	clock          clock.Clock
}

// Config holds configuration for the token service
type Config struct {
	// Secret is the HMAC signing secret shared by both token kinds
	Secret string
	// AccessTokenTTL is the access token lifetime
	AccessTokenTTL time.Duration
}

// New creates a new token Service. A non-positive AccessTokenTTL,
// including an explicit zero, is replaced with DefaultAccessTokenTTL.
func New(cfg Config, clk clock.Clock) (*Service, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	return &Service{
		secret:         []byte(cfg.Secret),
		accessTokenTTL: ttl,
		clock:          clk,
	}, nil
}

// AccessTokenTTL returns the configured access token lifetime
func (s *Service) AccessTokenTTL() time.Duration {
	return s.accessTokenTTL
}

// Sign produces a signed token for the given session with the given lifetime
func (s *Service) Sign(sessionID model.SessionID, userName string, ttl time.Duration) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		UserName: userName,
		RegisteredClaims: jwt.RegisteredClaims{
			// The jti keeps two tokens minted within the same second
			// distinct, so rotation always invalidates the old token
			ID:        uuid.NewString(),
			Subject:   string(sessionID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// SignAccess produces an access token using the configured TTL
func (s *Service) SignAccess(sessionID model.SessionID, userName string) (string, error) {
	return s.Sign(sessionID, userName, s.accessTokenTTL)
}

// SignRefresh produces a refresh token with the fixed 7-day TTL
func (s *Service) SignRefresh(sessionID model.SessionID, userName string) (string, error) {
	return s.Sign(sessionID, userName, RefreshTokenTTL)
}

// Verify checks a token's signature and expiry and returns its claims.
// It returns model.ErrTokenExpired for expired tokens and
// model.ErrInvalidToken for everything else that fails to parse.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrTokenExpired
		}
		return nil, model.ErrInvalidToken
	}
	if !tok.Valid {
		return nil, model.ErrInvalidToken
	}
	return claims, nil
}

// SessionID returns the session identifier embedded in the claims
func (c *Claims) SessionID() model.SessionID {
	return model.SessionID(c.Subject)
}

func (s *Service) keyFunc(tok *jwt.Token) (any, error) {
	if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, model.ErrInvalidToken
	}
	return s.secret, nil
}
