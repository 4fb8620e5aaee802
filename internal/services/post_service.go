package services

import (
	"errors"
	"time"

	"adboard_backend/internal/logger"
	"adboard_backend/internal/models"
	"adboard_backend/internal/repositories"
	"adboard_backend/internal/services/dto"
	"adboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PostService interface {
	CreatePost(db *gorm.DB, userID string, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	GetPost(db *gorm.DB, id string) (*dto.PostResponse, error)
	GetPosts(db *gorm.DB, page, pageSize int) ([]dto.PostResponse, error)
	GetUserPosts(db *gorm.DB, userID string, page, pageSize int) ([]dto.PostResponse, error)
	GetPublicPosts(db *gorm.DB, page, pageSize int) ([]dto.PublicPostResponse, error)
	UpdatePost(db *gorm.DB, userID, id string, req *dto.UpdatePostRequest) (*dto.PostResponse, error)
	Repost(db *gorm.DB, userID, id string) (*dto.PostResponse, error)
	DeletePost(db *gorm.DB, userID, id string) (*dto.DeletePostResponse, error)
}

type PostServiceImpl struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
) PostService {
	return &PostServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost - публикация объявления.
// Первая публикация пользователя бесплатна, каждая следующая стоит
// models.PostCreditCost кредитов. Списание и вставка строки объявления
// выполняются в ОДНОЙ транзакции: либо обе записи, либо ни одной.
func (s *PostServiceImpl) CreatePost(db *gorm.DB, userID string, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	post := &models.Post{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	post.ResetWindow(now)

	err := db.Transaction(func(tx *gorm.DB) error {
		count, err := s.userRepo.CountPosts(tx, userID)
		if err != nil {
			return err
		}

		if count > 0 {
			// Не первая публикация - платная
			if err := s.debit(tx, userID, models.PostCreditCost); err != nil {
				return err
			}
		}

		return s.postRepo.Create(tx, post)
	})
	if err != nil {
		return nil, s.wrapError(err)
	}

	logger.Info("Post created",
		"post_id", post.ID,
		"user_id", userID,
		"expires_at", post.ExpiresAt,
	)

	response := dto.NewPostResponse(post, now)
	return &response, nil
}

// GetPost возвращает объявление с пересчитанным is_active
func (s *PostServiceImpl) GetPost(db *gorm.DB, id string) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(db, id)
	if err != nil {
		return nil, s.wrapError(err)
	}

	response := dto.NewPostResponse(post, time.Now())
	return &response, nil
}

// GetPosts - все объявления, новые сверху
func (s *PostServiceImpl) GetPosts(db *gorm.DB, page, pageSize int) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.FindAll(db, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toResponses(posts), nil
}

// GetUserPosts - объявления конкретного пользователя
func (s *PostServiceImpl) GetUserPosts(db *gorm.DB, userID string, page, pageSize int) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.FindByUser(db, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.toResponses(posts), nil
}

// GetPublicPosts - публичная выдача: только непросроченные объявления,
// из данных владельца наружу уходит ТОЛЬКО контактный телефон.
func (s *PostServiceImpl) GetPublicPosts(db *gorm.DB, page, pageSize int) ([]dto.PublicPostResponse, error) {
	now := time.Now()

	posts, err := s.postRepo.FindActive(db, now, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.PublicPostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, dto.NewPublicPostResponse(&posts[i], now))
	}
	return responses, nil
}

// UpdatePost - частичное обновление содержимого.
// Окно видимости (posted_at/expires_at) и created_at не трогаются.
func (s *PostServiceImpl) UpdatePost(db *gorm.DB, userID, id string, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(db, id)
	if err != nil {
		return nil, s.wrapError(err)
	}
	if post.UserID != userID {
		return nil, apperrors.ErrNotPostOwner
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}

	if err := s.postRepo.UpdateFields(db, id, fields); err != nil {
		return nil, s.wrapError(err)
	}

	updated, err := s.postRepo.FindByID(db, id)
	if err != nil {
		return nil, s.wrapError(err)
	}

	response := dto.NewPostResponse(updated, time.Now())
	return &response, nil
}

// Repost - повторная публикация: окно видимости сбрасывается от текущего
// момента, содержимое и created_at сохраняются. Репост всегда платный -
// правило "первая публикация бесплатна" на него не распространяется.
func (s *PostServiceImpl) Repost(db *gorm.DB, userID, id string) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(db, id)
	if err != nil {
		return nil, s.wrapError(err)
	}
	if post.UserID != userID {
		return nil, apperrors.ErrNotPostOwner
	}

	now := time.Now()

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.debit(tx, userID, models.PostCreditCost); err != nil {
			return err
		}
		return s.postRepo.ResetWindow(tx, id, now, now.Add(models.VisibilityWindow))
	})
	if err != nil {
		return nil, s.wrapError(err)
	}

	updated, err := s.postRepo.FindByID(db, id)
	if err != nil {
		return nil, s.wrapError(err)
	}

	logger.Info("Post reposted", "post_id", id, "user_id", userID, "expires_at", updated.ExpiresAt)

	response := dto.NewPostResponse(updated, now)
	return &response, nil
}

// DeletePost - безвозвратное удаление. Повторное удаление того же id
// снова вернет NotFound.
func (s *PostServiceImpl) DeletePost(db *gorm.DB, userID, id string) (*dto.DeletePostResponse, error) {
	post, err := s.postRepo.FindByID(db, id)
	if err != nil {
		return nil, s.wrapError(err)
	}
	if post.UserID != userID {
		return nil, apperrors.ErrNotPostOwner
	}

	if err := s.postRepo.Delete(db, id); err != nil {
		return nil, s.wrapError(err)
	}

	return &dto.DeletePostResponse{Success: true, ID: id}, nil
}

// debit списывает кредиты; при нехватке строит доменную ошибку
// с реальным балансом на момент отказа.
func (s *PostServiceImpl) debit(tx *gorm.DB, userID string, amount int) error {
	err := s.userRepo.DebitCredits(tx, userID, amount)
	if err == nil {
		return nil
	}

	if errors.Is(err, repositories.ErrInsufficientCredits) {
		available, balErr := s.userRepo.GetCredits(tx, userID)
		if balErr != nil {
			return balErr
		}
		return apperrors.ErrInsufficientCredits(amount, available)
	}
	return err
}

func (s *PostServiceImpl) toResponses(posts []models.Post) []dto.PostResponse {
	now := time.Now()
	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, dto.NewPostResponse(&posts[i], now))
	}
	return responses
}

// wrapError переводит ошибки репозитория в AppError
func (s *PostServiceImpl) wrapError(err error) error {
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, repositories.ErrPostNotFound):
		return apperrors.ErrPostNotFound(err)
	case apperrors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrUserNotFound(err)
	default:
		if appErr, ok := apperrors.AsAppError(err); ok {
			return appErr
		}
		return apperrors.InternalError(err)
	}
}
