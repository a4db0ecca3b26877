package model

type RegisterUserRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	MobileNumber    string `json:"mobile_number" validate:"required,min=10,max=15"`
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	ReferralCode    string `json:"referral_code,omitempty" validate:"max=20"`
}

type LoginUserRequest struct {
	Identifier string `json:"identifier" validate:"required,max=100"`
	Password   string `json:"password" validate:"required,max=100"`
}

type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
