package repositories

import (
	"errors"
	"strings"

	"adboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPurchaseNotFound     = errors.New("credit purchase not found")
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
)

type CreditPurchaseRepository interface {
	Create(db *gorm.DB, purchase *models.CreditPurchase) error
	FindByID(db *gorm.DB, id string) (*models.CreditPurchase, error)
	FindByTransactionID(db *gorm.DB, transactionID string) (*models.CreditPurchase, error)
	FindByUser(db *gorm.DB, userID string) ([]models.CreditPurchase, error)
}

type CreditPurchaseRepositoryImpl struct{}

func NewCreditPurchaseRepository() CreditPurchaseRepository {
	return &CreditPurchaseRepositoryImpl{}
}

func (r *CreditPurchaseRepositoryImpl) Create(db *gorm.DB, purchase *models.CreditPurchase) error {
	err := db.Create(purchase).Error
	if err != nil {
		// transaction_id защищен уникальным индексом
		if strings.Contains(err.Error(), "duplicate key") ||
			strings.Contains(err.Error(), "uni_credit_purchases_transaction_id") {
			return ErrDuplicateTransaction
		}
		return err
	}
	return nil
}

func (r *CreditPurchaseRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.CreditPurchase, error) {
	var purchase models.CreditPurchase
	err := db.First(&purchase, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *CreditPurchaseRepositoryImpl) FindByTransactionID(db *gorm.DB, transactionID string) (*models.CreditPurchase, error) {
	var purchase models.CreditPurchase
	err := db.First(&purchase, "transaction_id = ?", transactionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *CreditPurchaseRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.CreditPurchase, error) {
	var purchases []models.CreditPurchase
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&purchases).Error
	return purchases, err
}
