package dto

import (
	"time"

	"adboard_backend/internal/models"
)

// UserResponse содержит полные данные о пользователе.
// Используется для эндпоинтов типа /users/me
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse строит UserResponse из модели
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Phone:     user.Phone,
		Credits:   user.Credits,
		CreatedAt: user.CreatedAt,
	}
}
