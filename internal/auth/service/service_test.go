package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorvault/internal/auth/models"
	"motorvault/internal/auth/store"
	"motorvault/internal/jwttoken"
	"motorvault/internal/platform/config"
	dErrors "motorvault/pkg/domain-errors"
)

func newTestService() *Service {
	tokens := jwttoken.New(config.JWTConfig{
		SigningKey: "test-signing-key",
		Algorithm:  "HS256",
		TTL:        time.Hour,
	})
	return NewService(store.NewInMemoryUserStore(), tokens)
}

func register(t *testing.T, svc *Service, email, password string) models.TokenResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    email,
		Password: password,
		FullName: "Jess Citizen",
		Phone:    "0400000000",
	})
	require.NoError(t, err)
	return resp
}

func Test_Register_IssuesTokenForNewUser(t *testing.T) {
	svc := newTestService()

	resp := register(t, svc, "u@x.com", "Secret123!")

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "u@x.com", resp.User.Email)
	assert.Regexp(t, `^MV-\d{7}$`, resp.User.MemberID)
	assert.NotEmpty(t, resp.User.ID)
	assert.False(t, resp.User.CreatedAt.IsZero())
}

func Test_Register_DuplicateEmailConflict(t *testing.T) {
	svc := newTestService()
	register(t, svc, "u@x.com", "Secret123!")

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:    "u@x.com",
		Password: "Other456!",
		FullName: "Someone Else",
		Phone:    "0411111111",
	})
	require.True(t, dErrors.Is(err, dErrors.CodeConflict))
}

func Test_LoginPassword_Succeeds(t *testing.T) {
	svc := newTestService()
	registered := register(t, svc, "u@x.com", "Secret123!")

	resp, err := svc.LoginPassword(context.Background(), models.PasswordLoginRequest{
		Email:    "u@x.com",
		Password: "Secret123!",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
}

func Test_LoginPassword_WrongPassword(t *testing.T) {
	svc := newTestService()
	register(t, svc, "u@x.com", "Secret123!")

	_, err := svc.LoginPassword(context.Background(), models.PasswordLoginRequest{
		Email:    "u@x.com",
		Password: "wrong",
	})
	require.True(t, dErrors.Is(err, dErrors.CodeInvalidCredentials))
}

func Test_LoginPassword_UnknownEmailSameFailure(t *testing.T) {
	svc := newTestService()
	register(t, svc, "u@x.com", "Secret123!")

	missing, err1 := svc.LoginPassword(context.Background(), models.PasswordLoginRequest{
		Email: "nobody@x.com", Password: "Secret123!",
	})
	wrong, err2 := svc.LoginPassword(context.Background(), models.PasswordLoginRequest{
		Email: "u@x.com", Password: "wrong",
	})

	// Unknown email and wrong credential are indistinguishable to the caller.
	assert.Equal(t, missing, wrong)
	require.ErrorIs(t, err1, err2)
}

func Test_LoginPIN_ExactMatch(t *testing.T) {
	svc := newTestService()
	registered := register(t, svc, "u@x.com", "Secret123!")

	stored, err := svc.users.FindByID(context.Background(), registered.User.ID)
	require.NoError(t, err)

	resp, err := svc.LoginPIN(context.Background(), models.PINLoginRequest{
		Email: "u@x.com",
		PIN:   stored.PIN,
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)

	_, err = svc.LoginPIN(context.Background(), models.PINLoginRequest{
		Email: "u@x.com",
		PIN:   "9999",
	})
	if stored.PIN != "9999" {
		require.True(t, dErrors.Is(err, dErrors.CodeInvalidCredentials))
	}
}

func Test_BothLoginPaths_ResolveSameIdentity(t *testing.T) {
	svc := newTestService()
	registered := register(t, svc, "u@x.com", "Secret123!")

	stored, err := svc.users.FindByID(context.Background(), registered.User.ID)
	require.NoError(t, err)

	viaPassword, err := svc.LoginPassword(context.Background(), models.PasswordLoginRequest{
		Email: "u@x.com", Password: "Secret123!",
	})
	require.NoError(t, err)
	viaPIN, err := svc.LoginPIN(context.Background(), models.PINLoginRequest{
		Email: "u@x.com", PIN: stored.PIN,
	})
	require.NoError(t, err)

	// Tokens from either path resolve to the same current user.
	tokens := jwttoken.New(config.JWTConfig{SigningKey: "test-signing-key", TTL: time.Hour})
	fromPassword, err := tokens.Verify(viaPassword.AccessToken)
	require.NoError(t, err)
	fromPIN, err := tokens.Verify(viaPIN.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, fromPassword.UserID, fromPIN.UserID)
	assert.Equal(t, fromPassword.Email, fromPIN.Email)

	me, err := svc.CurrentUser(context.Background(), fromPIN.UserID)
	require.NoError(t, err)
	assert.Equal(t, registered.User, me)
}

func Test_CurrentUser_UnknownID(t *testing.T) {
	svc := newTestService()
	_, err := svc.CurrentUser(context.Background(), "missing")
	require.True(t, dErrors.Is(err, dErrors.CodeNotFound))
}

func Test_UpdateProfile_PartialAndPasswordRehash(t *testing.T) {
	svc := newTestService()
	registered := register(t, svc, "u@x.com", "Secret123!")

	name := "Renamed Citizen"
	password := "NewSecret456!"
	updated, err := svc.UpdateProfile(context.Background(), registered.User.ID, models.UpdateProfileRequest{
		FullName: &name,
		Password: &password,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Citizen", updated.FullName)
	assert.Equal(t, "0400000000", updated.Phone) // untouched

	_, err = svc.LoginPassword(context.Background(), models.PasswordLoginRequest{
		Email: "u@x.com", Password: "NewSecret456!",
	})
	require.NoError(t, err)
	_, err = svc.LoginPassword(context.Background(), models.PasswordLoginRequest{
		Email: "u@x.com", Password: "Secret123!",
	})
	require.True(t, dErrors.Is(err, dErrors.CodeInvalidCredentials))
}
