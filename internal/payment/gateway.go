package payment

import (
	"adboard_backend/internal/models"
)

// Details - реквизиты, специфичные для способа оплаты
// (card_number / wallet_account / bank_account)
type Details map[string]string

// Gateway is the interface that all payment providers must implement.
// Реальная интеграция (банк, агрегатор) подключается за этим же
// интерфейсом, не трогая кредитный сервис.
type Gateway interface {
	// Process проводит платеж и возвращает уникальный transaction_id.
	// Реквизиты валидируются до списания: отсутствие обязательного
	// поля - ошибка валидации, а не ошибка провайдера.
	Process(method models.PaymentMethod, amount float64, details Details) (string, error)
}

// RequiredDetailField возвращает имя обязательного реквизита для способа оплаты
func RequiredDetailField(method models.PaymentMethod) (string, bool) {
	switch method {
	case models.PaymentMethodCard:
		return "card_number", true
	case models.PaymentMethodWallet:
		return "wallet_account", true
	case models.PaymentMethodBankTransfer:
		return "bank_account", true
	}
	return "", false
}

// transactionPrefix - префикс transaction_id по способу оплаты
func transactionPrefix(method models.PaymentMethod) string {
	switch method {
	case models.PaymentMethodCard:
		return "CARD"
	case models.PaymentMethodWallet:
		return "WALLET"
	case models.PaymentMethodBankTransfer:
		return "BANK"
	}
	return "TXN"
}
