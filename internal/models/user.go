package models

import "time"

// InitialCredits - стартовый баланс нового пользователя (первая публикация бесплатна)
const InitialCredits = 1

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Phone        string `gorm:"size:32"`
	Credits      int    `gorm:"not null;default:1"`

	// Relations
	Posts           []Post           `gorm:"foreignKey:UserID"`
	CreditPurchases []CreditPurchase `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshToken   `gorm:"foreignKey:UserID"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
