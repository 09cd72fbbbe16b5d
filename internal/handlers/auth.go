package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itmaschool/attendance-admin/internal/model"
)

// AccountReader — чтение аккаунтов для API
type AccountReader interface {
	GetByCredentials(ctx context.Context, login, password string) (*model.Account, error)
	List(ctx context.Context) ([]model.Account, error)
}

type AuthHandler struct {
	accounts AccountReader
	logger   *zap.Logger
}

func NewAuthHandler(accounts AccountReader, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, logger: logger}
}

// Login проверяет точное совпадение логина и пароля.
// Любая неудача — одинаковый ответ без деталей, чтобы не раскрывать,
// что именно не совпало.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	account, err := h.accounts.GetByCredentials(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		h.logger.Error("Failed to check credentials", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if account == nil {
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "user": account})
}
