package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/itmaschool/attendance-admin/internal/model"
	"github.com/itmaschool/attendance-admin/internal/notify"
)

// AbsenceStore — операции над отчётами о пропусках
type AbsenceStore interface {
	Create(ctx context.Context, record *model.AbsenceRecord) error
	List(ctx context.Context) ([]model.AbsenceRecord, error)
	Update(ctx context.Context, id string, fields bson.M) (*model.AbsenceRecord, error)
	Delete(ctx context.Context, id string) error
}

type AbsenceHandler struct {
	absences   AbsenceStore
	notifier   notify.Notifier
	adminChats []int64
	logger     *zap.Logger
}

func NewAbsenceHandler(absences AbsenceStore, notifier notify.Notifier, adminChats []int64, logger *zap.Logger) *AbsenceHandler {
	return &AbsenceHandler{
		absences:   absences,
		notifier:   notifier,
		adminChats: adminChats,
		logger:     logger,
	}
}

// Create сохраняет отчёт и уведомляет админов в Telegram.
// Уведомление best-effort: его неудача не портит ответ клиенту.
func (h *AbsenceHandler) Create(c *gin.Context) {
	var record model.AbsenceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.absences.Create(c.Request.Context(), &record); err != nil {
		h.logger.Error("Failed to create absence record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	msg := fmt.Sprintf("📊 **Hisobot**: %s\n❌ Yo'q: %s\n📝 %s\n💬 Sabab: %s",
		record.Teacher, record.Count, record.StudentName, record.Reason)
	for _, chatID := range h.adminChats {
		h.notifier.Send(c.Request.Context(), chatID, msg, nil)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// List отдаёт все отчёты, новые первыми
func (h *AbsenceHandler) List(c *gin.Context) {
	records, err := h.absences.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list absence records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// Update применяет присланные поля к отчёту
func (h *AbsenceHandler) Update(c *gin.Context) {
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	record, err := h.absences.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		h.logger.Error("Failed to update absence record",
			zap.String("record_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": record})
}

// Delete удаляет отчёт
func (h *AbsenceHandler) Delete(c *gin.Context) {
	if err := h.absences.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("Failed to delete absence record",
			zap.String("record_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
