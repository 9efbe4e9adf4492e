package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"lupang-store/internal/data/repository"
	"lupang-store/internal/dto/request"
	"lupang-store/internal/usecase"
	"lupang-store/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService(t *testing.T) (usecase.AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	repo := &repository.Repository{User: users, Order: newFakeOrderRepo()}
	return usecase.NewAuthService(repo, zap.NewNop()), users
}

func TestAuthService_Signup_Success(t *testing.T) {
	auth, users := newTestAuthService(t)
	before := time.Now().UTC()

	resp, err := auth.Signup(context.Background(), &request.SignupRequest{
		UserID:   "u1",
		Password: "p",
		Name:     "A",
		Phone:    "000",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", resp.UserID)
	assert.NotEmpty(t, resp.Message)

	stored, ok := users.users["u1"]
	require.True(t, ok, "user not persisted under resolved userId")
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, "A", stored.Name)
	assert.False(t, stored.CreatedAt.Before(before), "createdAt predates the command")
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	auth, users := newTestAuthService(t)

	_, err := auth.Signup(context.Background(), &request.SignupRequest{
		UserID:   "u1",
		Password: "secret123",
		Name:     "A",
		Phone:    "000",
	})
	require.NoError(t, err)

	stored := users.users["u1"]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestAuthService_Signup_UserIDDefaultsToEmail(t *testing.T) {
	auth, users := newTestAuthService(t)

	resp, err := auth.Signup(context.Background(), &request.SignupRequest{
		Email:    "a@b.com",
		Password: "p",
		Name:     "A",
		Phone:    "000",
	})
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", resp.UserID)
	_, ok := users.users["a@b.com"]
	assert.True(t, ok)
}

func TestAuthService_Signup_RepeatOverwrites(t *testing.T) {
	auth, users := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, &request.SignupRequest{
		UserID: "u1", Password: "p", Name: "First", Phone: "000",
	})
	require.NoError(t, err)

	_, err = auth.Signup(ctx, &request.SignupRequest{
		UserID: "u1", Password: "p", Name: "Second", Phone: "111",
	})
	require.NoError(t, err)

	all, err := users.Scan(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "duplicate signup must overwrite, not duplicate")
	assert.Equal(t, "Second", all[0].Name)
}

func TestAuthService_Signup_StoreError(t *testing.T) {
	auth, users := newTestAuthService(t)
	users.putErr = errors.New("store down")

	_, err := auth.Signup(context.Background(), &request.SignupRequest{
		UserID: "u1", Password: "p", Name: "A", Phone: "000",
	})
	assert.Error(t, err)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	auth, _ := newTestAuthService(t)

	outcome, err := auth.Login(context.Background(), &request.LoginRequest{
		Email:    "missing@x.com",
		Password: "p",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.LoginUserNotFound, outcome.Status)
	assert.Empty(t, outcome.Token)
}

func TestAuthService_Login_BlankCredentials(t *testing.T) {
	auth, _ := newTestAuthService(t)

	// Blank credentials are not a validation error; they compare
	// normally and miss.
	outcome, err := auth.Login(context.Background(), &request.LoginRequest{})
	require.NoError(t, err)
	assert.Equal(t, usecase.LoginUserNotFound, outcome.Status)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, &request.SignupRequest{
		UserID: "u1", Email: "a@b.com", Password: "right", Name: "A", Phone: "000",
	})
	require.NoError(t, err)

	outcome, err := auth.Login(ctx, &request.LoginRequest{Email: "a@b.com", Password: "wrong"})
	require.NoError(t, err)
	assert.Equal(t, usecase.LoginWrongPassword, outcome.Status)
	assert.Empty(t, outcome.Token)
}

func TestAuthService_Login_Success(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, &request.SignupRequest{
		UserID: "u1", Email: "a@b.com", Password: "right", Name: "A", Phone: "000",
	})
	require.NoError(t, err)

	outcome, err := auth.Login(ctx, &request.LoginRequest{Email: "a@b.com", Password: "right"})
	require.NoError(t, err)
	assert.Equal(t, usecase.LoginAuthenticated, outcome.Status)
	assert.NotEmpty(t, outcome.Token)
	assert.Equal(t, "A", outcome.Name)
}

func TestAuthService_Login_TrimsCredentials(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, &request.SignupRequest{
		UserID: "u1", Email: "a@b.com", Password: "right", Name: "A", Phone: "000",
	})
	require.NoError(t, err)

	outcome, err := auth.Login(ctx, &request.LoginRequest{
		Email:    "  a@b.com \n",
		Password: " right ",
	})
	require.NoError(t, err)
	assert.Equal(t, usecase.LoginAuthenticated, outcome.Status)
}

func TestAuthService_Login_CaseSensitiveEmail(t *testing.T) {
	auth, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, &request.SignupRequest{
		UserID: "u1", Email: "a@b.com", Password: "right", Name: "A", Phone: "000",
	})
	require.NoError(t, err)

	outcome, err := auth.Login(ctx, &request.LoginRequest{Email: "A@B.com", Password: "right"})
	require.NoError(t, err)
	assert.Equal(t, usecase.LoginUserNotFound, outcome.Status)
}

func TestAuthService_Login_StoreError(t *testing.T) {
	auth, users := newTestAuthService(t)
	users.findErr = errors.New("store down")

	_, err := auth.Login(context.Background(), &request.LoginRequest{Email: "a@b.com", Password: "p"})
	assert.Error(t, err)
}
