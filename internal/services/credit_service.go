package services

import (
	"encoding/json"

	"adboard_backend/internal/email"
	"adboard_backend/internal/logger"
	"adboard_backend/internal/models"
	"adboard_backend/internal/payment"
	"adboard_backend/internal/repositories"
	"adboard_backend/internal/services/dto"
	"adboard_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreditService interface {
	PurchaseCredits(db *gorm.DB, userID string, req *dto.PurchaseCreditsRequest) (*dto.CreditPurchaseResponse, error)
	GetBalance(db *gorm.DB, userID string) (*dto.BalanceResponse, error)
	GetHistory(db *gorm.DB, userID string) ([]dto.CreditPurchaseResponse, error)
}

type CreditServiceImpl struct {
	userRepo      repositories.UserRepository
	purchaseRepo  repositories.CreditPurchaseRepository
	gateway       payment.Gateway
	emailProvider email.Provider
}

func NewCreditService(
	userRepo repositories.UserRepository,
	purchaseRepo repositories.CreditPurchaseRepository,
	gateway payment.Gateway,
	emailProvider email.Provider,
) CreditService {
	return &CreditServiceImpl{
		userRepo:      userRepo,
		purchaseRepo:  purchaseRepo,
		gateway:       gateway,
		emailProvider: emailProvider,
	}
}

// PurchaseCredits - покупка кредитов через платежный шлюз.
// Сумма считается по фиксированному курсу (5 кредитов за 1 у.е.).
// Аудит-запись и зачисление баланса коммитятся в ОДНОЙ транзакции.
func (s *CreditServiceImpl) PurchaseCredits(db *gorm.DB, userID string, req *dto.PurchaseCreditsRequest) (*dto.CreditPurchaseResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	method := models.PaymentMethod(req.PaymentMethod)
	amount := models.AmountForCredits(req.Credits)

	// Шлюз валидирует реквизиты и выдает transaction_id
	transactionID, err := s.gateway.Process(method, amount, payment.Details(req.PaymentDetails))
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, apperrors.ErrPaymentGatewayError.WithError(err)
	}

	// В аудит-записи реквизиты храним только маскированными
	maskedDetails, err := json.Marshal(payment.MaskDetails(payment.Details(req.PaymentDetails)))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	purchase := &models.CreditPurchase{
		UserID:        userID,
		Credits:       req.Credits,
		AmountPaid:    amount,
		PaymentMethod: method,
		TransactionID: transactionID,
		Details:       datatypes.JSON(maskedDetails),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.purchaseRepo.Create(tx, purchase); err != nil {
			return err
		}
		return s.userRepo.AddCredits(tx, userID, req.Credits)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateTransaction) {
			return nil, apperrors.ErrDuplicateTransaction
		}
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("Credits purchased",
		"user_id", userID,
		"credits", req.Credits,
		"amount_paid", amount,
		"transaction_id", transactionID,
	)

	// Квитанция не должна ронять покупку
	if err := s.emailProvider.SendPurchaseReceipt(user.Email, req.Credits, amount, transactionID); err != nil {
		logger.Warn("Failed to send purchase receipt", "email", user.Email, "error", err)
	}

	response := dto.NewCreditPurchaseResponse(purchase)
	return &response, nil
}

// GetBalance - текущий баланс пользователя
func (s *CreditServiceImpl) GetBalance(db *gorm.DB, userID string) (*dto.BalanceResponse, error) {
	credits, err := s.userRepo.GetCredits(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.BalanceResponse{Credits: credits}, nil
}

// GetHistory - все покупки пользователя, новые сверху
func (s *CreditServiceImpl) GetHistory(db *gorm.DB, userID string) ([]dto.CreditPurchaseResponse, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	purchases, err := s.purchaseRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.CreditPurchaseResponse, 0, len(purchases))
	for i := range purchases {
		responses = append(responses, dto.NewCreditPurchaseResponse(&purchases[i]))
	}
	return responses, nil
}
