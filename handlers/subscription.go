package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiftbill/services/subscription"
)

// SubscriptionHandler exposes the plan upgrade endpoints.
type SubscriptionHandler struct {
	SubscriptionService subscription.SubscriptionService
}

// StartUpgradeHandler handles POST /api/billing/upgrade.
func (h *SubscriptionHandler) StartUpgradeHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	session, err := h.SubscriptionService.StartUpgrade(userID)
	if err != nil {
		if errors.Is(err, subscription.ErrAlreadyPro) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to start upgrade", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start upgrade payment"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmUpgradeHandler handles POST /api/billing/confirm.
func (h *SubscriptionHandler) ConfirmUpgradeHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	usr, err := h.SubscriptionService.ConfirmUpgrade(userID)
	if err != nil {
		switch {
		case errors.Is(err, subscription.ErrNoUpgradePending):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, subscription.ErrPaymentNotDone):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to confirm upgrade", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to confirm upgrade payment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the pro plan", "user": usr})
}
