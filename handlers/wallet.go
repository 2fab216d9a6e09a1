package handlers

import (
	"net/http"

	"turfhub/models"
	"turfhub/services/wallet"
	"turfhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WalletHandler wires wallet endpoints to the wallet service.
type WalletHandler struct {
	WalletService wallet.WalletService
}

// GetBalanceHandler handles GET /wallet.
func (h *WalletHandler) GetBalanceHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	balance, err := h.WalletService.Balance(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "balance": balance})
}

// ListEntriesHandler handles GET /wallet/entries.
func (h *WalletHandler) ListEntriesHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	page, err := h.WalletService.Entries(userID, listParams(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listResponse(c, "entries", page)
}

// TopUpHandler handles POST /wallet/topup. It returns the Stripe client
// secret; the client confirms the payment and calls the confirm endpoint.
func (h *WalletHandler) TopUpHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var input models.TopUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	intent, err := h.WalletService.TopUp(userID, input)
	if err != nil {
		logger.Error("Top-up failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, intent)
}

// ConfirmTopUpHandler handles POST /wallet/topup/confirm.
func (h *WalletHandler) ConfirmTopUpHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var req struct {
		PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.WalletService.ConfirmTopUp(userID, req.PaymentIntentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}
