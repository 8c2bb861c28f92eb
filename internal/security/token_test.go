package security

import (
	"testing"
	"time"

	"cashbook-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, "cashbook-auth")
	session := domain.Session{UserID: "user-1", Email: "owner@example.com", Name: "Owner"}

	token, err := m.GenerateAccessToken(session)
	require.NoError(t, err)

	got, err := m.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("ffffffffffffffffffffffffffffffff", "")
	token, err := issuer.GenerateAccessToken(domain.Session{UserID: "user-1"})
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, "").Authenticate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsWrongIssuer(t *testing.T) {
	token, err := NewTokenManager(testSecret, "someone-else").GenerateAccessToken(domain.Session{UserID: "user-1"})
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, "cashbook-auth").Authenticate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager(testSecret, "").(*tokenManager)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := m.GenerateAccessToken(domain.Session{UserID: "user-1"})
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, "").Authenticate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_RefreshTokenRejected(t *testing.T) {
	claims := UserClaims{
		Type: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, "").Authenticate(token)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestTokenManager_MissingSubject(t *testing.T) {
	claims := UserClaims{
		Type: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenManager(testSecret, "").Authenticate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager(testSecret, "").Authenticate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
