package dto

import (
	"fmt"
	"scams/internal/domains/user/model"
	"scams/shared/encryption"
)

// UserProfile is a user with its personal fields decrypted.
type UserProfile struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func (p *UserProfile) FromModel(user model.User, cipher encryption.Cipher) error {
	email, err := cipher.Decrypt(user.Email)
	if err != nil {
		return fmt.Errorf("failed to decrypt email: %w", err)
	}

	fullName, err := cipher.Decrypt(user.FullName)
	if err != nil {
		return fmt.Errorf("failed to decrypt full name: %w", err)
	}

	p.ID = user.ID
	p.Email = email
	p.FullName = fullName
	p.Role = user.Role

	return nil
}

type LecturerResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type ListLecturersResponse struct {
	Lecturers []LecturerResponse `json:"lecturers"`
}
