package handlers

import (
	"net/http"

	"adboard_backend/internal/services"
	"adboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	*BaseHandler
	creditService services.CreditService
}

func NewCreditHandler(base *BaseHandler, creditService services.CreditService) *CreditHandler {
	return &CreditHandler{
		BaseHandler:   base,
		creditService: creditService,
	}
}

func (h *CreditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	credits := rg.Group("/credits")
	{
		credits.POST("/purchase", h.PurchaseCredits)
		credits.GET("/balance", h.GetBalance)
		credits.GET("/history", h.GetHistory)
	}
}

// PurchaseCredits godoc
// @Summary Покупка кредитов
// @Description Проводит платеж через шлюз и зачисляет кредиты (5 кредитов за единицу валюты)
// @Tags credits
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PurchaseCreditsRequest true "Количество кредитов и способ оплаты"
// @Success 201 {object} dto.CreditPurchaseResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 503 {object} apperrors.AppError
// @Router /credits/purchase [post]
func (h *CreditHandler) PurchaseCredits(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PurchaseCreditsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	purchase, err := h.creditService.PurchaseCredits(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, purchase)
}

// GetBalance godoc
// @Summary Текущий баланс кредитов
// @Tags credits
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Router /credits/balance [get]
func (h *CreditHandler) GetBalance(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	balance, err := h.creditService.GetBalance(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}

// GetHistory godoc
// @Summary История покупок кредитов
// @Tags credits
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.CreditPurchaseResponse
// @Router /credits/history [get]
func (h *CreditHandler) GetHistory(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	history, err := h.creditService.GetHistory(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchases": history})
}
