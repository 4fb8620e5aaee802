package models

import "time"

const (
	// VisibilityWindow - фиксированное окно видимости объявления.
	// Не конфигурируется per-post.
	VisibilityWindow = 24 * time.Hour

	// PostCreditCost - стоимость публикации (и репоста) в кредитах
	PostCreditCost = 5
)

type Post struct {
	BaseModel
	UserID      string   `gorm:"type:uuid;not null;index"`
	Title       string   `gorm:"size:255;not null"`
	Description string   `gorm:"type:text;not null"`
	Price       *float64 `gorm:"type:decimal(10,2)"`
	ImageURL    string

	PostedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`

	// Relations
	User User `gorm:"foreignKey:UserID"`
}

// IsActive - вычисляемый предикат, НИКОГДА не хранится в БД.
// Сравнение строгое: объявление, истекающее ровно в now, уже неактивно.
func (p *Post) IsActive(now time.Time) bool {
	return now.Before(p.ExpiresAt)
}

// ResetWindow устанавливает новое окно видимости от момента t
func (p *Post) ResetWindow(t time.Time) {
	p.PostedAt = t
	p.ExpiresAt = t.Add(VisibilityWindow)
}
