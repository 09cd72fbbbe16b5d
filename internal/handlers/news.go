package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itmaschool/attendance-admin/internal/model"
)

// NewsReader — чтение объявлений для API
type NewsReader interface {
	Latest(ctx context.Context) (*model.NewsItem, error)
}

type NewsHandler struct {
	news   NewsReader
	logger *zap.Logger
}

func NewNewsHandler(news NewsReader, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{news: news, logger: logger}
}

// Latest отдаёт текст самого свежего объявления.
// Просроченные записи до сюда не доживают — их убирает TTL индекс.
func (h *NewsHandler) Latest(c *gin.Context) {
	item, err := h.news.Latest(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to get latest news", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	text := "Новостей пока нет"
	if item != nil {
		text = item.Text
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
