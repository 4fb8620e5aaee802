package dto

import (
	"time"

	"adboard_backend/internal/models"
)

// PurchaseCreditsRequest - запрос покупки кредитов.
// payment_details содержит реквизит конкретного способа оплаты,
// его наличие проверяет платежный шлюз.
type PurchaseCreditsRequest struct {
	Credits        int               `json:"credits" validate:"required,gt=0"`
	PaymentMethod  string            `json:"payment_method" validate:"required,payment-method"` // Custom rule
	PaymentDetails map[string]string `json:"payment_details"`
}

// CreditPurchaseResponse - запись о покупке
type CreditPurchaseResponse struct {
	ID            string    `json:"id"`
	Credits       int       `json:"credits"`
	AmountPaid    float64   `json:"amount_paid"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// BalanceResponse - текущий баланс пользователя
type BalanceResponse struct {
	Credits int `json:"credits"`
}

// NewCreditPurchaseResponse строит ответ из модели
func NewCreditPurchaseResponse(purchase *models.CreditPurchase) CreditPurchaseResponse {
	return CreditPurchaseResponse{
		ID:            purchase.ID,
		Credits:       purchase.Credits,
		AmountPaid:    purchase.AmountPaid,
		PaymentMethod: string(purchase.PaymentMethod),
		TransactionID: purchase.TransactionID,
		CreatedAt:     purchase.CreatedAt,
	}
}
