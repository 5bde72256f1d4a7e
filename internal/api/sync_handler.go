package api

import (
	"fmt"
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

type SyncHandler struct {
	tickerService *service.TickerService
	logger        *logrus.Logger
}

func NewSyncHandler(db *gorm.DB, logger *logrus.Logger, cfg *config.Config, sources *adapter.SourceRegistry) *SyncHandler {
	return &SyncHandler{
		tickerService: service.NewTickerService(db, logger, cfg, sources),
		logger:        logger,
	}
}

// SyncGameHandler 同步指定游戏的比赛数据
// POST /sync/source/:game?source=gosugamers
func (h *SyncHandler) SyncGameHandler(c *gin.Context) {
	game := model.Game(c.Param("game"))
	source := c.DefaultQuery("source", gosugamers.SourceName)

	count, err := h.tickerService.SyncGame(c.Request.Context(), source, game)
	if err != nil {
		h.logger.Errorf("同步%s失败: %v", game, err)
		c.JSON(statusFor(err), gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s同步成功", game),
		"count":   count,
	})
}
