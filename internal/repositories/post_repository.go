package repositories

import (
	"errors"
	"time"

	"adboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	Create(db *gorm.DB, post *models.Post) error
	FindByID(db *gorm.DB, id string) (*models.Post, error)
	FindAll(db *gorm.DB, limit, offset int) ([]models.Post, error)
	FindByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Post, error)
	FindActive(db *gorm.DB, now time.Time, limit, offset int) ([]models.Post, error)
	UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) error
	ResetWindow(db *gorm.DB, id string, postedAt, expiresAt time.Time) error
	Delete(db *gorm.DB, id string) error
	CountAll(db *gorm.DB) (int64, error)
}

type PostRepositoryImpl struct{}

func NewPostRepository() PostRepository {
	return &PostRepositoryImpl{}
}

func (r *PostRepositoryImpl) Create(db *gorm.DB, post *models.Post) error {
	return db.Create(post).Error
}

func (r *PostRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	err := db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := db.Order("posted_at DESC").Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) FindByUser(db *gorm.DB, userID string, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := db.Where("user_id = ?", userID).
		Order("posted_at DESC").Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

// FindActive возвращает только непросроченные объявления (строго now < expires_at)
// вместе с владельцем - публичной выдаче нужен его контактный телефон.
func (r *PostRepositoryImpl) FindActive(db *gorm.DB, now time.Time, limit, offset int) ([]models.Post, error) {
	var posts []models.Post
	err := db.Preload("User").
		Where("expires_at > ?", now).
		Order("posted_at DESC").Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := db.Model(&models.Post{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) ResetWindow(db *gorm.DB, id string, postedAt, expiresAt time.Time) error {
	result := db.Model(&models.Post{}).Where("id = ?", id).Updates(map[string]interface{}{
		"posted_at":  postedAt,
		"expires_at": expiresAt,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Post{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Повторное удаление того же id тоже NotFound, не тихий успех
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) CountAll(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Post{}).Count(&count).Error
	return count, err
}
