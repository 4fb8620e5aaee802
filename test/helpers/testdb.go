package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"adboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser создает пользователя напрямую в БД с хешированием пароля
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		rawPassword := user.PasswordHash
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Не удалось хешировать пароль: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("ОШИБКА: не удалось создать пользователя %s: %v", user.Email, result.Error)
		return result.Error
	}

	return nil
}

// CreateAndLoginUser создает пользователя и логинит его через API
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, email, password string) (string, *models.User) {
	user := &models.User{
		Email:        email,
		Phone:        "+7 700 000 0000",
		PasswordHash: password, // Сырой пароль
		Credits:      models.InitialCredits,
	}
	err := CreateUser(t, db, user)
	assert.NoError(t, err, "Создание тестового пользователя не должно вызывать ошибку")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	// Восстанавливаем сырой пароль в объекте user (для удобства в тестах)
	user.PasswordHash = password

	return loginResponse.Token, user
}

// CreateAndLoginUniqueUser создает пользователя с уникальным email
func CreateAndLoginUniqueUser(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("user_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, db, email, "password123")
}

// SetCredits выставляет пользователю нужный баланс напрямую в БД
func SetCredits(t *testing.T, db *gorm.DB, userID string, credits int) {
	err := db.Model(&models.User{}).Where("id = ?", userID).Update("credits", credits).Error
	assert.NoError(t, err, "Не удалось выставить баланс кредитов")
}

// CreatePost создает объявление напрямую в БД с активным окном видимости
func CreatePost(t *testing.T, db *gorm.DB, userID, title string) *models.Post {
	now := time.Now().UTC()
	post := &models.Post{
		UserID:      userID,
		Title:       title,
		Description: "Тестовое описание",
		PostedAt:    now,
		ExpiresAt:   now.Add(models.VisibilityWindow),
	}
	result := db.Create(post)
	assert.NoError(t, result.Error, "Не удалось создать тестовое объявление")
	return post
}

// CreateExpiredPost создает объявление с уже истекшим окном видимости
func CreateExpiredPost(t *testing.T, db *gorm.DB, userID, title string) *models.Post {
	postedAt := time.Now().UTC().Add(-2 * models.VisibilityWindow)
	post := &models.Post{
		UserID:      userID,
		Title:       title,
		Description: "Истекшее объявление",
		PostedAt:    postedAt,
		ExpiresAt:   postedAt.Add(models.VisibilityWindow),
	}
	result := db.Create(post)
	assert.NoError(t, result.Error, "Не удалось создать истекшее объявление")
	return post
}
