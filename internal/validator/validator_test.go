package validator

import (
	"testing"

	"adboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
)

func TestValidator_RegisterRequest(t *testing.T) {
	v := New()

	t.Run("валидный запрос", func(t *testing.T) {
		req := dto.RegisterRequest{
			Email:    "user@example.com",
			Password: "password123",
			Phone:    "+7 701 123 4567",
		}
		assert.NoError(t, v.Validate(&req))
	})

	t.Run("невалидный email", func(t *testing.T) {
		req := dto.RegisterRequest{
			Email:    "not-an-email",
			Password: "password123",
			Phone:    "+7 701 123 4567",
		}
		err := v.Validate(&req)
		assert.Error(t, err)

		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors, "email", "Ошибка должна привязываться к json-имени поля")
	})

	t.Run("короткий пароль", func(t *testing.T) {
		req := dto.RegisterRequest{
			Email:    "user@example.com",
			Password: "123",
			Phone:    "+7 701 123 4567",
		}
		err := v.Validate(&req)
		assert.Error(t, err)

		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors, "password")
	})

	t.Run("мусор вместо телефона", func(t *testing.T) {
		req := dto.RegisterRequest{
			Email:    "user@example.com",
			Password: "password123",
			Phone:    "not a phone",
		}
		err := v.Validate(&req)
		assert.Error(t, err)
	})
}

func TestValidator_PurchaseCreditsRequest(t *testing.T) {
	v := New()

	t.Run("валидная покупка", func(t *testing.T) {
		req := dto.PurchaseCreditsRequest{
			Credits:       25,
			PaymentMethod: "card",
			PaymentDetails: map[string]string{
				"card_number": "4111111111111111",
			},
		}
		assert.NoError(t, v.Validate(&req))
	})

	t.Run("неположительное количество кредитов", func(t *testing.T) {
		req := dto.PurchaseCreditsRequest{
			Credits:       -5,
			PaymentMethod: "card",
		}
		err := v.Validate(&req)
		assert.Error(t, err)

		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors, "credits")
	})

	t.Run("неизвестный способ оплаты", func(t *testing.T) {
		req := dto.PurchaseCreditsRequest{
			Credits:       10,
			PaymentMethod: "crypto",
		}
		err := v.Validate(&req)
		assert.Error(t, err)

		vErr, ok := err.(*ValidationError)
		assert.True(t, ok)
		assert.Contains(t, vErr.Errors, "payment_method")
	})
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+7 701 123 4567",
		"87011234567",
		"+1-202-555-0143",
		"+49 (30) 123456",
	}
	for _, phone := range valid {
		assert.True(t, phoneRe.MatchString(phone), "Телефон должен проходить: %s", phone)
	}

	invalid := []string{
		"abc",
		"+",
		"123",
		"phone: 87011234567",
	}
	for _, phone := range invalid {
		assert.False(t, phoneRe.MatchString(phone), "Телефон не должен проходить: %s", phone)
	}
}
