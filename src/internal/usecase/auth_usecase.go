package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"invest-service/src/internal/entity"
	"invest-service/src/internal/model"
	"invest-service/src/internal/model/converter"
	"invest-service/src/internal/repository"
	httpError "invest-service/src/pkg/http-error"
	"invest-service/src/pkg/log"
	"invest-service/src/pkg/token"
	"invest-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository repository.UserStore
	Config         *viper.Viper
}

func NewAuthUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository repository.UserStore,
	cfg *viper.Viper,
) *AuthUseCase {
	return &AuthUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
		Config:         cfg,
	}
}

func (c *AuthUseCase) Register(ctx context.Context, request *model.RegisterUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Register", utils.ConvertString(request.Username))
		return result
	}

	exists, err := c.UserRepository.ExistsByMobileOrUsername(ctx, request.MobileNumber, request.Username)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("auth-usecase", err.Error(), "Register-exists", request.Username)
		return result
	}
	if exists {
		errObj := httpError.NewConflict()
		errObj.Message = "user already exists with this mobile number or username"
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Register", request.Username)
		return result
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("auth-usecase", err.Error(), "Register-hash", request.Username)
		return result
	}

	referralCode, err := c.generateReferralCode(ctx)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("auth-usecase", err.Error(), "Register-referral-code", request.Username)
		return result
	}

	// an unknown referral code is silently ignored, the account is simply
	// created without a referrer link
	var referredBy *string
	if request.ReferralCode != "" {
		if _, err := c.UserRepository.FindByReferralCode(ctx, request.ReferralCode); err == nil {
			code := request.ReferralCode
			referredBy = &code
		}
	}

	user := &entity.User{
		UserID:       uuid.NewString(),
		Name:         request.Name,
		MobileNumber: request.MobileNumber,
		Username:     request.Username,
		PasswordHash: string(hashed),
		ReferralCode: referralCode,
		ReferredBy:   referredBy,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := c.UserRepository.Create(ctx, user); err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("auth-usecase", err.Error(), "Register-create", request.Username)
		return result
	}

	signed, err := c.issueToken(user)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("auth-usecase", err.Error(), "Register-token", request.Username)
		return result
	}

	c.Log.Info("auth-usecase", "user registered", "Register", user.UserID)
	result.Data = &model.AuthResponse{
		User:  converter.UserToResponse(user),
		Token: signed,
	}
	return result
}

func (c *AuthUseCase) Login(ctx context.Context, request *model.LoginUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", request.Identifier)
		return result
	}

	user, err := c.UserRepository.FindByIdentifier(ctx, request.Identifier)
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid credentials"
		result.Error = errObj
		c.Log.Error("auth-usecase", "unknown identifier", "Login", request.Identifier)
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid credentials"
		result.Error = errObj
		c.Log.Error("auth-usecase", "password mismatch", "Login", request.Identifier)
		return result
	}

	signed, err := c.issueToken(user)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		result.Error = errObj
		c.Log.Error("auth-usecase", err.Error(), "Login-token", request.Identifier)
		return result
	}

	c.Log.Info("auth-usecase", "user logged in", "Login", user.UserID)
	result.Data = &model.AuthResponse{
		User:  converter.UserToResponse(user),
		Token: signed,
	}
	return result
}

func (c *AuthUseCase) GetUser(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "GetUser", request.ID)
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.ID)
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "GetUser", request.ID)
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

func (c *AuthUseCase) issueToken(user *entity.User) (string, error) {
	expiry := time.Duration(c.Config.GetInt("jwt.expiry_hours")) * time.Hour
	return token.Generate(c.Config.GetString("jwt.secret"), user.UserID, user.Username, user.IsAdmin, expiry)
}

func (c *AuthUseCase) generateReferralCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		exists, err := c.UserRepository.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not allocate a unique referral code")
}
