package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AccountsHandler struct {
	accounts AccountReader
	adminKey string
	logger   *zap.Logger
}

func NewAccountsHandler(accounts AccountReader, adminKey string, logger *zap.Logger) *AccountsHandler {
	return &AccountsHandler{accounts: accounts, adminKey: adminKey, logger: logger}
}

// List отдаёт все аккаунты. Доступ закрыт общим ключом в query параметре
func (h *AccountsHandler) List(c *gin.Context) {
	if h.adminKey == "" || c.Query("key") != h.adminKey {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	accounts, err := h.accounts.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list accounts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, accounts)
}
