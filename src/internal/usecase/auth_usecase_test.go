package usecase_test

import (
	"context"
	"testing"

	"invest-service/src/internal/entity"
	"invest-service/src/internal/model"
	"invest-service/src/internal/usecase"
	"invest-service/src/pkg/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCase(store *memStore) *usecase.AuthUseCase {
	cfg := testConfig()
	return usecase.NewAuthUseCase(testLogger(cfg), testValidator(), store, cfg)
}

func registerRequest() *model.RegisterUserRequest {
	return &model.RegisterUserRequest{
		Name:            "Asha Rao",
		MobileNumber:    "9876543210",
		Username:        "asha",
		Password:        "secret12",
		ConfirmPassword: "secret12",
	}
}

func TestRegisterAssignsReferralCode(t *testing.T) {
	store := newMemStore()
	uc := newAuthUseCase(store)

	result := uc.Register(context.Background(), registerRequest())
	require.NoError(t, result.Error)

	response := result.Data.(*model.AuthResponse)
	assert.Len(t, response.User.ReferralCode, 8)
	assert.Nil(t, response.User.ReferredBy)
	assert.NotEmpty(t, response.Token)

	claim, err := token.Parse("test-secret", response.Token)
	require.NoError(t, err)
	assert.Equal(t, response.User.ID, claim.UserID)
	assert.False(t, claim.IsAdmin)
}

func TestRegisterLinksKnownReferralCode(t *testing.T) {
	store := newMemStore()
	store.addUser(&entity.User{UserID: "y1", Username: "referrer", MobileNumber: "9000000000", ReferralCode: "CODE1", IsActive: true})
	uc := newAuthUseCase(store)

	request := registerRequest()
	request.ReferralCode = "CODE1"
	result := uc.Register(context.Background(), request)
	require.NoError(t, result.Error)

	response := result.Data.(*model.AuthResponse)
	require.NotNil(t, response.User.ReferredBy)
	assert.Equal(t, "CODE1", *response.User.ReferredBy)
}

func TestRegisterIgnoresUnknownReferralCode(t *testing.T) {
	store := newMemStore()
	uc := newAuthUseCase(store)

	request := registerRequest()
	request.ReferralCode = "NOSUCH"
	result := uc.Register(context.Background(), request)
	require.NoError(t, result.Error)

	response := result.Data.(*model.AuthResponse)
	assert.Nil(t, response.User.ReferredBy, "an unknown code must not block registration or link anyone")
}

func TestRegisterDuplicate(t *testing.T) {
	store := newMemStore()
	uc := newAuthUseCase(store)

	require.NoError(t, uc.Register(context.Background(), registerRequest()).Error)

	duplicate := registerRequest()
	duplicate.MobileNumber = "9111111111"
	result := uc.Register(context.Background(), duplicate)
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusConflict, errCode(t, result.Error))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	store := newMemStore()
	uc := newAuthUseCase(store)

	request := registerRequest()
	request.ConfirmPassword = "different"
	result := uc.Register(context.Background(), request)
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusBadRequest, errCode(t, result.Error))
}

func TestLoginByMobileOrUsername(t *testing.T) {
	store := newMemStore()
	uc := newAuthUseCase(store)
	require.NoError(t, uc.Register(context.Background(), registerRequest()).Error)

	for _, identifier := range []string{"asha", "9876543210"} {
		result := uc.Login(context.Background(), &model.LoginUserRequest{Identifier: identifier, Password: "secret12"})
		require.NoError(t, result.Error, "login with %q", identifier)
		assert.NotEmpty(t, result.Data.(*model.AuthResponse).Token)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := newMemStore()
	uc := newAuthUseCase(store)
	require.NoError(t, uc.Register(context.Background(), registerRequest()).Error)

	result := uc.Login(context.Background(), &model.LoginUserRequest{Identifier: "asha", Password: "wrong"})
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusUnauthorized, errCode(t, result.Error))
}

func TestLoginUnknownIdentifier(t *testing.T) {
	store := newMemStore()
	uc := newAuthUseCase(store)

	result := uc.Login(context.Background(), &model.LoginUserRequest{Identifier: "nobody", Password: "whatever"})
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusUnauthorized, errCode(t, result.Error))
}

func TestLoginCarriesAdminClaim(t *testing.T) {
	store := newMemStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	store.addUser(&entity.User{
		UserID:       "admin-1",
		Username:     "admin",
		MobileNumber: "9999999999",
		PasswordHash: string(hash),
		IsAdmin:      true,
		IsActive:     true,
	})
	uc := newAuthUseCase(store)

	result := uc.Login(context.Background(), &model.LoginUserRequest{Identifier: "admin", Password: "admin123"})
	require.NoError(t, result.Error)

	claim, err := token.Parse("test-secret", result.Data.(*model.AuthResponse).Token)
	require.NoError(t, err)
	assert.True(t, claim.IsAdmin)
}

func TestGetUserNotFound(t *testing.T) {
	store := newMemStore()
	uc := newAuthUseCase(store)

	result := uc.GetUser(context.Background(), &model.GetUserRequest{ID: "missing"})
	require.Error(t, result.Error)
	assert.Equal(t, fiber.StatusNotFound, errCode(t, result.Error))
}
