package api

import (
	"net/http"

	"MatchTicker/internal/adapter"
	"MatchTicker/internal/adapter/gosugamers"
	"MatchTicker/internal/config"
	"MatchTicker/internal/model"
	"MatchTicker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NotifyHandler 开赛提醒接口
type NotifyHandler struct {
	notifyService *service.NotifyService
	logger        *logrus.Logger
}

// NewNotifyHandler 创建 NotifyHandler
func NewNotifyHandler(db *gorm.DB, logger *logrus.Logger, cfg *config.Config, sources *adapter.SourceRegistry) *NotifyHandler {
	ticker := service.NewTickerService(db, logger, cfg, sources)
	return &NotifyHandler{
		notifyService: service.NewNotifyService(db, logger, cfg, ticker),
		logger:        logger,
	}
}

// notifyPayload 提醒请求体
type notifyPayload struct {
	Source  string `json:"source"`
	Game    string `json:"game" binding:"required"`
	Team    string `json:"team" binding:"required"`
	Seconds int64  `json:"seconds"`
	Force   bool   `json:"force"`
}

// Notify 触发一次开赛提醒
// POST /api/notify
func (h *NotifyHandler) Notify(c *gin.Context) {
	var payload notifyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payload.Source == "" {
		payload.Source = gosugamers.SourceName
	}

	sent, err := h.notifyService.Run(c.Request.Context(), service.NotifyRequest{
		Source:  payload.Source,
		Game:    model.Game(payload.Game),
		Team:    payload.Team,
		Seconds: payload.Seconds,
		Force:   payload.Force,
	})
	if err != nil {
		h.logger.WithError(err).Error("Notify failed")
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": sent})
}
