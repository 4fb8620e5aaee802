package dto

import (
	"time"

	"adboard_backend/internal/models"
)

// CreatePostRequest - запрос на публикацию объявления
type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	ImageURL    string   `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdatePostRequest - частичное обновление: применяются только переданные поля.
// posted_at / expires_at этим запросом НЕ трогаются.
type UpdatePostRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
}

// PostResponse - объявление для владельца/внутренних выдач.
// is_active всегда вычисляется на момент чтения, в БД его нет.
type PostResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       *float64  `json:"price,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	PostedAt    time.Time `json:"posted_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PublicPostResponse - публичная проекция: объявление плюс контактный
// телефон владельца. Остальные поля владельца наружу не отдаем.
type PublicPostResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        *float64  `json:"price,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	PostedAt     time.Time `json:"posted_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	IsActive     bool      `json:"is_active"`
	ContactPhone string    `json:"contact_phone"`
}

// DeletePostResponse - результат удаления
type DeletePostResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// NewPostResponse строит PostResponse, пересчитывая is_active против now
func NewPostResponse(post *models.Post, now time.Time) PostResponse {
	return PostResponse{
		ID:          post.ID,
		UserID:      post.UserID,
		Title:       post.Title,
		Description: post.Description,
		Price:       post.Price,
		ImageURL:    post.ImageURL,
		PostedAt:    post.PostedAt,
		ExpiresAt:   post.ExpiresAt,
		IsActive:    post.IsActive(now),
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

// NewPublicPostResponse строит публичную проекцию с контактом владельца
func NewPublicPostResponse(post *models.Post, now time.Time) PublicPostResponse {
	return PublicPostResponse{
		ID:           post.ID,
		Title:        post.Title,
		Description:  post.Description,
		Price:        post.Price,
		ImageURL:     post.ImageURL,
		PostedAt:     post.PostedAt,
		ExpiresAt:    post.ExpiresAt,
		IsActive:     post.IsActive(now),
		ContactPhone: post.User.Phone,
	}
}
