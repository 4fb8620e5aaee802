package payment

import (
	"fmt"
	"strings"

	"adboard_backend/internal/models"
	"adboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// SimulatedGateway - симулированный платежный шлюз.
// Валидирует реквизиты и выдает transaction_id, денег не двигает.
type SimulatedGateway struct{}

func NewSimulatedGateway() Gateway {
	return &SimulatedGateway{}
}

func (g *SimulatedGateway) Process(method models.PaymentMethod, amount float64, details Details) (string, error) {
	if !method.IsValid() {
		return "", apperrors.ErrInvalidPaymentMethod
	}

	if amount <= 0 {
		return "", apperrors.NewBadRequestError("Payment amount must be positive")
	}

	field, ok := RequiredDetailField(method)
	if !ok {
		return "", apperrors.ErrInvalidPaymentMethod
	}

	if strings.TrimSpace(details[field]) == "" {
		return "", apperrors.ErrMissingPaymentDetail(field)
	}

	// transaction_id уникален per purchase и несет префикс способа оплаты
	return fmt.Sprintf("%s-%s", transactionPrefix(method), uuid.NewString()), nil
}

// MaskDetails маскирует реквизиты для аудит-записи: храним только
// последние 4 символа значения.
func MaskDetails(details Details) Details {
	masked := make(Details, len(details))
	for key, value := range details {
		masked[key] = maskValue(value)
	}
	return masked
}

func maskValue(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}
