package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-for-jwt-signing")

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret)

	token, err := issuer.Issue("63326e43b3400100648788f6")
	require.NoError(t, err)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "63326e43b3400100648788f6", userID)
}

func TestTokenIssuer_DistinctTokensForSameUser(t *testing.T) {
	issuer := NewTokenIssuer(testSecret)
	fixed := time.Unix(1700000000, 0)
	issuer.now = func() time.Time { return fixed }

	a, err := issuer.Issue("user-1")
	require.NoError(t, err)
	b, err := issuer.Issue("user-1")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestTokenIssuer_NoExpiry(t *testing.T) {
	issuer := NewTokenIssuer(testSecret)
	issuer.now = func() time.Time { return time.Now().Add(-10 * 365 * 24 * time.Hour) }

	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	issuer.now = time.Now
	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenIssuer_IssueRequiresUserID(t *testing.T) {
	_, err := NewTokenIssuer(testSecret).Issue("")
	assert.ErrorIs(t, err, ErrMissingClaim)
}

func TestTokenIssuer_VerifyRejects(t *testing.T) {
	issuer := NewTokenIssuer(testSecret)
	valid, err := issuer.Issue("user-1")
	require.NoError(t, err)

	otherSecret, err := NewTokenIssuer([]byte("different-secret")).Issue("user-1")
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	missingClaim, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user-1"}).
		SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt-token"},
		{"malformed", "header.payload.signature"},
		{"wrong secret", otherSecret},
		{"tampered payload", tampered},
		{"alg none", noneToken},
		{"missing user id", missingClaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := issuer.Verify(tt.token)
			assert.Error(t, err)
			assert.Empty(t, userID)
		})
	}
}
