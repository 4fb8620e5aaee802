package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"adboard_backend/internal/models"
	"adboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestCreatePost_FirstFree - первое объявление публикуется за стартовый кредит без списания
func TestCreatePost_FirstFree(t *testing.T) {
	t.Parallel()

	// 1. Подготовка (Arrange)
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	postBody := map[string]interface{}{
		"title":       "Продам велосипед",
		"description": "Почти новый, самовывоз",
		"price":       150.0,
	}

	// 2. Действие (Act)
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/posts", token, postBody)

	// 3. Проверка (Assert)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Первое объявление должно публиковаться. Ответ: "+bodyStr)

	var post struct {
		ID        string `json:"id"`
		IsActive  bool   `json:"is_active"`
		PostedAt  string `json:"posted_at"`
		ExpiresAt string `json:"expires_at"`
	}
	err := json.Unmarshal([]byte(bodyStr), &post)
	assert.NoError(t, err)
	assert.True(t, post.IsActive, "Свежее объявление должно быть активным")
	assert.NotEmpty(t, post.ExpiresAt)

	// Баланс не тронут: первое объявление бесплатно
	var dbUser models.User
	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, models.InitialCredits, dbUser.Credits, "Первое объявление не должно списывать кредиты")
}

// TestCreatePost_SecondCostsCredits - второе объявление списывает 5 кредитов
func TestCreatePost_SecondCostsCredits(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	helpers.CreatePost(t, ts.DB, user.ID, "Первое объявление")
	helpers.SetCredits(t, ts.DB, user.ID, 7)

	postBody := map[string]interface{}{
		"title":       "Второе объявление",
		"description": "Платное размещение",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/posts", token, postBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Ответ: "+bodyStr)

	var dbUser models.User
	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, 7-models.PostCreditCost, dbUser.Credits, "Должно списаться ровно 5 кредитов")
}

// TestCreatePost_InsufficientCredits - при нехватке кредитов объявление не создается
func TestCreatePost_InsufficientCredits(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	helpers.CreatePost(t, ts.DB, user.ID, "Существующее объявление")
	// Стартовый кредит остался, но его не хватает на платное размещение
	helpers.SetCredits(t, ts.DB, user.ID, 1)

	postBody := map[string]interface{}{
		"title":       "Не должно создаться",
		"description": "Кредитов не хватает",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/posts", token, postBody)

	assert.Equal(t, http.StatusPaymentRequired, res.StatusCode)
	assert.Contains(t, bodyStr, "required")
	assert.Contains(t, bodyStr, "available")

	// Баланс не изменился, объявление не появилось
	var dbUser models.User
	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, 1, dbUser.Credits, "Неудачная публикация не должна списывать кредиты")

	var count int64
	ts.DB.Model(&models.Post{}).Where("user_id = ? AND title = ?", user.ID, "Не должно создаться").Count(&count)
	assert.Equal(t, int64(0), count)
}

// TestPublicPosts_HidesExpired - витрина не показывает истекшие объявления
func TestPublicPosts_HidesExpired(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	activeTitle := fmt.Sprintf("Активное %s", user.ID)
	expiredTitle := fmt.Sprintf("Истекшее %s", user.ID)
	helpers.CreatePost(t, ts.DB, user.ID, activeTitle)
	helpers.CreateExpiredPost(t, ts.DB, user.ID, expiredTitle)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/posts/public?page_size=100", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, activeTitle)
	assert.NotContains(t, bodyStr, expiredTitle, "Истекшее объявление не должно попадать в публичную выдачу")
}

// TestPublicPosts_ExposesContactPhone - витрина отдает контактный телефон владельца
func TestPublicPosts_ExposesContactPhone(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)
	helpers.CreatePost(t, ts.DB, user.ID, fmt.Sprintf("С контактом %s", user.ID))

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/posts/public?page_size=100", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "contact_phone")
	assert.NotContains(t, bodyStr, "password", "Публичная выдача не должна содержать чувствительных полей")
}

// TestUpdatePost_OwnerOnly - чужое объявление редактировать нельзя
func TestUpdatePost_OwnerOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	_, owner := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)
	strangerToken, _ := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	post := helpers.CreatePost(t, ts.DB, owner.ID, "Чужое объявление")

	updateBody := map[string]interface{}{"title": "Взломанный заголовок"}
	res, _ := ts.SendRequest(t, "PATCH", "/api/v1/posts/"+post.ID, strangerToken, updateBody)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestUpdatePost_DoesNotTouchWindow - редактирование не продлевает окно видимости
func TestUpdatePost_DoesNotTouchWindow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	post := helpers.CreateExpiredPost(t, ts.DB, user.ID, "Истекшее для правки")

	updateBody := map[string]interface{}{"description": "Обновленное описание"}
	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/v1/posts/"+post.ID, token, updateBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var updated struct {
		Description string `json:"description"`
		IsActive    bool   `json:"is_active"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, "Обновленное описание", updated.Description)
	assert.False(t, updated.IsActive, "Редактирование не должно возвращать объявление в выдачу")
}

// TestRepost_ReopensWindowAndCharges - продление списывает 5 кредитов и открывает новое окно
func TestRepost_ReopensWindowAndCharges(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	post := helpers.CreateExpiredPost(t, ts.DB, user.ID, "Для продления")
	helpers.SetCredits(t, ts.DB, user.ID, 10)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/posts/"+post.ID+"/repost", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var reposted struct {
		IsActive bool `json:"is_active"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &reposted))
	assert.True(t, reposted.IsActive, "После продления объявление снова активно")

	var dbUser models.User
	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, 10-models.PostCreditCost, dbUser.Credits)
}

// TestRepost_InsufficientCredits - продление без кредитов отклоняется
func TestRepost_InsufficientCredits(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	post := helpers.CreateExpiredPost(t, ts.DB, user.ID, "Без кредитов")
	helpers.SetCredits(t, ts.DB, user.ID, 2)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/posts/"+post.ID+"/repost", token, nil)
	assert.Equal(t, http.StatusPaymentRequired, res.StatusCode)
}

// TestDeletePost - удаление своего объявления, кредиты не возвращаются
func TestDeletePost(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	post := helpers.CreatePost(t, ts.DB, user.ID, "На удаление")
	helpers.SetCredits(t, ts.DB, user.ID, 3)

	res, bodyStr := ts.SendRequest(t, "DELETE", "/api/v1/posts/"+post.ID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"success":true`)

	// Повторное удаление - 404
	res2, _ := ts.SendRequest(t, "DELETE", "/api/v1/posts/"+post.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, res2.StatusCode)

	// Кредиты не вернулись
	var dbUser models.User
	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, 3, dbUser.Credits, "Удаление не должно возвращать кредиты")
}

// TestGetPost_NotFound - несуществующий ID дает 404
func TestGetPost_NotFound(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/posts/00000000-0000-0000-0000-000000000000", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
