package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(expiry time.Duration) *JWTSessionService {
	return NewJWTSessionService("test-session-secret-32bytes!!!!!", expiry, "crypto-dashboard")
}

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := newSessionService(time.Hour)
	userID := uuid.New()

	token, expiresAt, err := svc.Generate(userID, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestSessionToken_Expired(t *testing.T) {
	svc := newSessionService(-time.Minute)
	token, _, err := svc.Generate(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	issuer := NewJWTSessionService("secret-one-with-enough-length!!!", time.Hour, "crypto-dashboard")
	verifier := NewJWTSessionService("secret-two-with-enough-length!!!", time.Hour, "crypto-dashboard")

	token, _, err := issuer.Generate(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestSessionToken_Garbage(t *testing.T) {
	svc := newSessionService(time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Validate(token)
		assert.Error(t, err, "token %q should not validate", token)
	}
}
