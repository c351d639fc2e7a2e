package dto

import (
	"scams/infras/jwt"
	userModel "scams/internal/domains/user/model"
	userDto "scams/internal/domains/user/model/dto"
	"scams/shared/constant"
	"scams/shared/encryption"
)

type SignUpRequest struct {
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=255"`
	Role     string `json:"role"      validate:"omitempty,oneof=lecturer student"`
}

// Normalize trims and lower-cases the email and fills the default role.
func (r *SignUpRequest) Normalize() {
	r.Email = encryption.NormalizeEmail(r.Email)

	if r.Role == constant.Empty {
		r.Role = constant.RoleStudent
	}
}

// ToUserModel encrypts the personal fields. The request must be normalized first.
func (r *SignUpRequest) ToUserModel(cipher encryption.Cipher, hashedPassword string) (userModel.User, error) {
	email, err := cipher.Encrypt(r.Email)
	if err != nil {
		return userModel.User{}, err
	}

	fullName, err := cipher.Encrypt(r.FullName)
	if err != nil {
		return userModel.User{}, err
	}

	return userModel.User{
		Role:           r.Role,
		FullName:       fullName,
		Email:          email,
		EmailHash:      cipher.HashEmail(r.Email),
		HashedPassword: hashedPassword,
	}, nil
}

type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignInResponse struct {
	User  userDto.UserProfile `json:"user"`
	Token jwt.TokenPair       `json:"token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SignOutRequest optionally carries the refresh token so it is revoked together
// with the access token.
type SignOutRequest struct {
	RefreshToken string `json:"refresh_token"`
}
