package middleware

import (
	"strings"

	"invest-service/src/internal/repository"
	httpError "invest-service/src/pkg/http-error"
	"invest-service/src/pkg/token"
	"invest-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

const authLocalsKey = "auth"

func VerifyBearer(config *viper.Viper) fiber.Handler {
	secret := config.GetString("jwt.secret")

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		claim, err := token.Parse(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or expired token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(authLocalsKey, claim)
		return ctx.Next()
	}
}

// RequireAdmin re-checks the admin flag against the database; the claim
// flag alone is never trusted beyond signature verification.
func RequireAdmin(users repository.UserStore) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		auth := GetUser(ctx)
		if auth == nil {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		user, err := users.FindByID(ctx.Context(), auth.UserID)
		if err != nil {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "unknown account"
			return utils.ResponseError(errObj, ctx)
		}
		if !user.IsAdmin {
			errObj := httpError.NewForbidden()
			errObj.Message = "admin rights required"
			return utils.ResponseError(errObj, ctx)
		}

		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) *token.Claim {
	claim, _ := ctx.Locals(authLocalsKey).(*token.Claim)
	return claim
}
