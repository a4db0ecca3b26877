package converter

import (
	"invest-service/src/internal/entity"
	"invest-service/src/internal/model"
)

func UserToResponse(user *entity.User) *model.UserResponse {
	return &model.UserResponse{
		ID:               user.UserID,
		Name:             user.Name,
		MobileNumber:     user.MobileNumber,
		Username:         user.Username,
		ReferralCode:     user.ReferralCode,
		ReferredBy:       user.ReferredBy,
		Balance:          user.Balance,
		Earnings:         user.Earnings,
		WithdrawalWallet: user.WithdrawalWallet,
		IsAdmin:          user.IsAdmin,
		IsActive:         user.IsActive,
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

func UserToReferredResponse(user *entity.User) model.ReferredUserResponse {
	return model.ReferredUserResponse{
		ID:        user.UserID,
		Name:      user.Name,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
