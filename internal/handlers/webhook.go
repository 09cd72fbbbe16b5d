package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// UpdateHandler обрабатывает одно событие вебхука
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *models.Update)
}

type WebhookHandler struct {
	engine UpdateHandler
	logger *zap.Logger
}

func NewWebhookHandler(engine UpdateHandler, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{engine: engine, logger: logger}
}

// Handle принимает вебхук от Telegram.
// Ответ всегда 200 с пустым телом: иначе Telegram будет слать
// то же событие снова и снова.
func (h *WebhookHandler) Handle(c *gin.Context) {
	var update models.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.logger.Warn("Failed to decode webhook body", zap.Error(err))
		c.Status(http.StatusOK)
		return
	}

	h.engine.HandleUpdate(c.Request.Context(), &update)
	c.Status(http.StatusOK)
}
