package models

import (
	"math"
	"time"

	"gorm.io/datatypes"
)

// CreditsPerCurrencyUnit - фиксированный курс: 5 кредитов за 1 у.е.
const CreditsPerCurrencyUnit = 5

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodWallet       PaymentMethod = "wallet"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// IsValid проверяет, что способ оплаты входит в поддерживаемый набор
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodWallet, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// CreditPurchase - аудит-запись завершенного платежа.
// Никогда не изменяется и не удаляется после создания.
type CreditPurchase struct {
	ID            string         `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        string         `gorm:"type:uuid;not null;index"`
	Credits       int            `gorm:"not null"`
	AmountPaid    float64        `gorm:"type:decimal(10,2);not null"`
	PaymentMethod PaymentMethod  `gorm:"type:varchar(20);not null"`
	TransactionID string         `gorm:"uniqueIndex;not null"`
	Details       datatypes.JSON `gorm:"type:jsonb"` // маскированный снапшот реквизитов
	CreatedAt     time.Time      `gorm:"default:now()"`
}

// AmountForCredits считает стоимость покупки по фиксированному курсу,
// с точностью 2 знака (денежные поля хранятся как decimal(10,2)).
func AmountForCredits(credits int) float64 {
	amount := float64(credits) / CreditsPerCurrencyUnit
	return math.Round(amount*100) / 100
}
