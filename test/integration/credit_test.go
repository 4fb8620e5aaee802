package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"adboard_backend/internal/models"
	"adboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestPurchaseCredits_Success - покупка зачисляет кредиты и пишет запись в историю
func TestPurchaseCredits_Success(t *testing.T) {
	t.Parallel()

	// 1. Подготовка (Arrange)
	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	purchaseBody := map[string]interface{}{
		"credits":        25,
		"payment_method": "card",
		"payment_details": map[string]string{
			"card_number": "4111111111111111",
		},
	}

	// 2. Действие (Act)
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/credits/purchase", token, purchaseBody)

	// 3. Проверка (Assert)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Покупка должна пройти. Ответ: "+bodyStr)

	var purchase struct {
		ID            string  `json:"id"`
		Credits       int     `json:"credits"`
		AmountPaid    float64 `json:"amount_paid"`
		TransactionID string  `json:"transaction_id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &purchase))
	assert.Equal(t, 25, purchase.Credits)
	assert.InDelta(t, 5.0, purchase.AmountPaid, 0.001, "25 кредитов по курсу 5 за единицу валюты стоят 5.00")
	assert.Contains(t, purchase.TransactionID, "CARD-")

	// Баланс: стартовый кредит + 25
	var dbUser models.User
	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, models.InitialCredits+25, dbUser.Credits)

	// История содержит покупку
	histRes, histBodyStr := ts.SendRequest(t, "GET", "/api/v1/credits/history", token, nil)
	assert.Equal(t, http.StatusOK, histRes.StatusCode)
	assert.Contains(t, histBodyStr, purchase.TransactionID)
}

// TestPurchaseCredits_InvalidMethod - неизвестный способ оплаты отклоняется
func TestPurchaseCredits_InvalidMethod(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	purchaseBody := map[string]interface{}{
		"credits":        10,
		"payment_method": "crypto",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/credits/purchase", token, purchaseBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// Баланс не изменился
	var dbUser models.User
	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, models.InitialCredits, dbUser.Credits)
}

// TestPurchaseCredits_MissingDetail - без реквизита способа оплаты платеж не проходит
func TestPurchaseCredits_MissingDetail(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	purchaseBody := map[string]interface{}{
		"credits":         10,
		"payment_method":  "wallet",
		"payment_details": map[string]string{},
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/credits/purchase", token, purchaseBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "wallet_account")
}

// TestPurchaseCredits_NonPositiveAmount - ноль и отрицательные значения отклоняются
func TestPurchaseCredits_NonPositiveAmount(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	for _, credits := range []int{0, -5} {
		purchaseBody := map[string]interface{}{
			"credits":        credits,
			"payment_method": "card",
			"payment_details": map[string]string{
				"card_number": "4111111111111111",
			},
		}
		res, _ := ts.SendRequest(t, "POST", "/api/v1/credits/purchase", token, purchaseBody)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "Количество кредитов %d должно отклоняться", credits)
	}
}

// TestGetBalance - баланс отражает покупки и списания
func TestGetBalance(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)
	helpers.SetCredits(t, ts.DB, user.ID, 42)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/credits/balance", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var balance struct {
		Credits int `json:"credits"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &balance))
	assert.Equal(t, 42, balance.Credits)
}

// TestPurchaseThenPost - сквозной сценарий: покупка кредитов и платная публикация
func TestPurchaseThenPost(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginUniqueUser(t, ts, ts.DB)

	// Первое объявление бесплатно
	helpers.CreatePost(t, ts.DB, user.ID, "Первое бесплатное")

	// Покупаем 25 кредитов
	purchaseBody := map[string]interface{}{
		"credits":        25,
		"payment_method": "bank_transfer",
		"payment_details": map[string]string{
			"bank_account": "KZ0000000000000001",
		},
	}
	purRes, _ := ts.SendRequest(t, "POST", "/api/v1/credits/purchase", token, purchaseBody)
	assert.Equal(t, http.StatusCreated, purRes.StatusCode)

	// Платная публикация списывает 5
	postBody := map[string]interface{}{
		"title":       "Платное объявление",
		"description": "Списывает кредиты",
	}
	postRes, _ := ts.SendRequest(t, "POST", "/api/v1/posts", token, postBody)
	assert.Equal(t, http.StatusCreated, postRes.StatusCode)

	var dbUser models.User
	assert.NoError(t, ts.DB.First(&dbUser, "id = ?", user.ID).Error)
	assert.Equal(t, models.InitialCredits+25-models.PostCreditCost, dbUser.Credits)
}
