package validator

import (
	"log"
	"regexp"

	"adboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// phoneRe - допускаем международный формат с необязательным '+',
// пробелами и дефисами, 7-20 значащих символов
var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{5,18}[0-9]$`)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Если правило не удалось зарегистрировать, приложение
			// не должно запускаться, так как это критическая ошибка.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'payment-method': способ оплаты из фиксированного набора
	mustRegister("payment-method", validatePaymentMethod)

	// 'phone': контактный телефон
	mustRegister("phone", validatePhone)
}

// --- Функции валидации ---

func validatePaymentMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	return models.PaymentMethod(value).IsValid()
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phoneRe.MatchString(value)
}
