package jwttoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorvault/internal/platform/config"
	dErrors "motorvault/pkg/domain-errors"
)

func testService(key string) *Service {
	return New(config.JWTConfig{
		SigningKey: key,
		Algorithm:  "HS256",
		TTL:        time.Hour,
	})
}

func Test_Issue_RoundTrip(t *testing.T) {
	svc := testService("test-signing-key")

	token, err := svc.Issue("user-1", "u@x.com", 0)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "u@x.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func Test_Verify_ExpiredToken(t *testing.T) {
	svc := testService("test-signing-key")

	token, err := svc.Issue("user-1", "u@x.com", -time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, dErrors.New(dErrors.CodeTokenExpired, "token has expired"))
}

func Test_Verify_MalformedToken(t *testing.T) {
	svc := testService("test-signing-key")

	_, err := svc.Verify("not-a-jwt")
	require.ErrorIs(t, err, dErrors.New(dErrors.CodeTokenInvalid, "invalid token"))
}

func Test_Verify_DifferentSecret(t *testing.T) {
	issuer := testService("test-signing-key")
	verifier := testService("test-signing-kex") // one byte off

	token, err := issuer.Issue("user-1", "u@x.com", 0)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.True(t, dErrors.Is(err, dErrors.CodeTokenInvalid))
}

func Test_Verify_RejectsDifferentAlgorithm(t *testing.T) {
	svc := testService("test-signing-key")

	// Same secret, HS384: must be rejected on the method check alone.
	other := jwt.NewWithClaims(jwt.SigningMethodHS384, Claims{
		UserID: "user-1",
		Email:  "u@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := other.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.True(t, dErrors.Is(err, dErrors.CodeTokenInvalid))
}

func Test_Verify_RejectsUnsignedToken(t *testing.T) {
	svc := testService("test-signing-key")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.True(t, dErrors.Is(err, dErrors.CodeTokenInvalid))
}

func Test_Adapter_ExposesIdentity(t *testing.T) {
	svc := testService("test-signing-key")
	adapter := NewAdapter(svc)

	token, err := svc.Issue("user-1", "u@x.com", 0)
	require.NoError(t, err)

	claims, err := adapter.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "u@x.com", claims.Email)
}
