package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"adboard_backend/internal/models"
	"adboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestAuthFlow - регистрация, логин, стартовый кредит
func TestAuthFlow(t *testing.T) {
	t.Parallel()

	// 1. Подготовка (Arrange)
	ts := GetTestServer(t)

	email := fmt.Sprintf("auth_flow_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
		"phone":    "+7 701 123 4567",
	}

	// 2. Действие: Регистрация (Act)
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	// 3. Проверка: Регистрация (Assert)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Registration successful")

	var regResponse struct {
		User struct {
			ID      string `json:"id"`
			Email   string `json:"email"`
			Credits int    `json:"credits"`
		} `json:"user"`
	}
	err := json.Unmarshal([]byte(regBodyStr), &regResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.Equal(t, email, regResponse.User.Email)
	assert.Equal(t, models.InitialCredits, regResponse.User.Credits, "Новый пользователь должен получить стартовый кредит")

	// --- Шаг 2: Логин ---
	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusOK, logRes.StatusCode)

	var loginResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	err = json.Unmarshal([]byte(logBodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.AccessToken, "Access-токен не должен быть пустым")
	assert.NotEmpty(t, loginResponse.RefreshToken, "Refresh-токен не должен быть пустым")

	// --- Шаг 3: Профиль по токену ---
	meRes, meBodyStr := ts.SendRequest(t, "GET", "/api/v1/users/me", loginResponse.AccessToken, nil)
	assert.Equal(t, http.StatusOK, meRes.StatusCode)
	assert.Contains(t, meBodyStr, email)
}

// TestRegister_DuplicateEmail - защита от дубликатов
func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	email := fmt.Sprintf("duplicate_%d@test.com", time.Now().UnixNano())
	err := helpers.CreateUser(t, ts.DB, &models.User{
		Email:        email,
		Phone:        "+7 702 000 0000",
		PasswordHash: "pass123456",
		Credits:      models.InitialCredits,
	})
	assert.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"email":    email,
		"password": "password_is_long_enough_123",
		"phone":    "+7 702 000 0001",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", duplicateBody)

	assert.Equal(t, http.StatusConflict, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "already", "Ответ должен сообщать о занятом email")
}

// TestLogin_WrongPassword - неверный пароль не раскрывает, что именно неверно
func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	_, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": "totally_wrong_password",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusUnauthorized, logRes.StatusCode)
	assert.NotContains(t, logBodyStr, "password hash")
}

// TestRegister_WeakPassword - пароль короче 6 символов отклоняется
func TestRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	registerBody := map[string]interface{}{
		"email":    fmt.Sprintf("weak_%d@test.com", time.Now().UnixNano()),
		"password": "123",
		"phone":    "+7 703 000 0000",
	}
	regRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusBadRequest, regRes.StatusCode)
}

// TestRefreshToken_Rotation - старый refresh-токен гаснет после обновления
func TestRefreshToken_Rotation(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	_, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	loginBody := map[string]interface{}{
		"email":    user.Email,
		"password": user.PasswordHash, // хелпер вернул сырой пароль
	}
	_, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	var loginResponse struct {
		RefreshToken string `json:"refresh_token"`
	}
	err := json.Unmarshal([]byte(logBodyStr), &loginResponse)
	assert.NoError(t, err)

	refreshBody := map[string]interface{}{"refresh_token": loginResponse.RefreshToken}
	refRes, refBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusOK, refRes.StatusCode)

	var refreshResponse struct {
		RefreshToken string `json:"refresh_token"`
	}
	err = json.Unmarshal([]byte(refBodyStr), &refreshResponse)
	assert.NoError(t, err)
	assert.NotEqual(t, loginResponse.RefreshToken, refreshResponse.RefreshToken, "Refresh-токен должен ротироваться")

	// Старый токен больше не работает
	oldRes, _ := ts.SendRequest(t, "POST", "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, oldRes.StatusCode)
}

// TestProtectedRoute_NoToken - без токена доступа нет
func TestProtectedRoute_NoToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
