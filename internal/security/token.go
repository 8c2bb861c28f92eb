package security

import (
	"errors"
	"time"

	"cashbook-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

const defaultAccessTTL = time.Hour

// UserClaims are the claims carried by tokens issued by the identity provider
type UserClaims struct {
	Email string    `json:"email,omitempty"`
	Name  string    `json:"name,omitempty"`
	Type  TokenType `json:"type"`
	jwt.RegisteredClaims
}

// Session converts verified claims into the explicit session passed to services.
func (c *UserClaims) Session() domain.Session {
	return domain.Session{
		UserID: c.Subject,
		Email:  c.Email,
		Name:   c.Name,
	}
}

type TokenManager interface {
	GenerateAccessToken(session domain.Session) (string, error)
	ValidateToken(tokenString string) (*UserClaims, error)
	Authenticate(tokenString string) (domain.Session, error)
}

type tokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds an HS256 token manager. An empty issuer disables the issuer check.
func NewTokenManager(secret, issuer string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    defaultAccessTTL,
		now:    time.Now,
	}
}

// GenerateAccessToken signs an access token for the session. The server never issues tokens to clients;
// this is used by tests and local tooling.
func (m *tokenManager) GenerateAccessToken(session domain.Session) (string, error) {
	now := m.now()
	claims := UserClaims{
		Email: session.Email,
		Name:  session.Name,
		Type:  TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*UserClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Authenticate validates an access token and returns its session.
func (m *tokenManager) Authenticate(tokenString string) (domain.Session, error) {
	claims, err := m.ValidateToken(tokenString)
	if err != nil {
		return domain.Session{}, err
	}
	if claims.Type != TokenTypeAccess {
		return domain.Session{}, ErrWrongTokenType
	}
	return claims.Session(), nil
}
