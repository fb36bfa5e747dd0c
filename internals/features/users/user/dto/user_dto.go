package dto

import (
	"time"

	"tamilmandram_backend/internals/features/users/user/model"
)

type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.UserID,
		Name:      m.UserName,
		Email:     m.UserEmail,
		Role:      m.UserRole,
		CreatedAt: m.CreatedAt,
	}
}
