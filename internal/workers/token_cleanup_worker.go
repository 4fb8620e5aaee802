package workers

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
)

type TokenCleanupWorker struct {
	db *gorm.DB
}

func NewTokenCleanupWorker(db *gorm.DB) *TokenCleanupWorker {
	return &TokenCleanupWorker{db: db}
}

// Start запускает фоновую очистку истекших refresh-токенов
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.cleanExpiredTokens(ctx)
}

// cleanExpiredTokens удаляет refresh-токены с прошедшим сроком действия
func (w *TokenCleanupWorker) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Token cleanup worker stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				DELETE FROM refresh_tokens
				WHERE expires_at < NOW()
			`)
			if result.Error != nil {
				log.Printf("Error cleaning expired refresh tokens: %v", result.Error)
			} else if result.RowsAffected > 0 {
				log.Printf("Deleted %d expired refresh tokens", result.RowsAffected)
			}
		}
	}
}
