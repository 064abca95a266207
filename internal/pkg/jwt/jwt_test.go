package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wintararaj-cmd/Attendance/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "15m", "24h")

	token, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	userID, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "15m", "24h")

	token, _, err := svc.GenerateAccessToken("user-1", "admin", user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestParseRefreshToken_RejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "15m", "24h")

	_, err := svc.ParseRefreshToken("not-a-token")
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestParseRefreshToken_RejectsExpired(t *testing.T) {
	t.Parallel()

	svc := NewJWTService(testSecret, "15m", "-1h")

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}

func TestParseRefreshToken_RejectsForeignSignature(t *testing.T) {
	t.Parallel()

	other := NewJWTService("some-other-secret", "15m", "24h")
	token, _, err := other.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	svc := NewJWTService(testSecret, "15m", "24h")
	_, err = svc.ParseRefreshToken(token)
	assert.ErrorIs(t, err, user.ErrInvalidToken)
}
