package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPost_IsActive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	post := &Post{}
	post.ResetWindow(now)

	assert.True(t, post.IsActive(now), "Объявление активно сразу после публикации")
	assert.True(t, post.IsActive(now.Add(VisibilityWindow-time.Second)), "Активно за секунду до истечения")
	assert.False(t, post.IsActive(now.Add(VisibilityWindow)), "Ровно на границе окна объявление уже истекло")
	assert.False(t, post.IsActive(now.Add(VisibilityWindow+time.Hour)))
}

func TestPost_ResetWindow(t *testing.T) {
	postedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	post := &Post{}
	post.ResetWindow(postedAt)

	assert.Equal(t, postedAt, post.PostedAt)
	assert.Equal(t, postedAt.Add(VisibilityWindow), post.ExpiresAt)

	// Повторный вызов полностью перезаписывает окно
	later := postedAt.Add(3 * VisibilityWindow)
	post.ResetWindow(later)
	assert.Equal(t, later, post.PostedAt)
	assert.Equal(t, later.Add(VisibilityWindow), post.ExpiresAt)
}
