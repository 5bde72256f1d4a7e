package api

import (
	"net/http"
	"strconv"

	"MatchTicker/internal/adapter"
	"MatchTicker/internal/adapter/gosugamers"
	"MatchTicker/internal/config"
	"MatchTicker/internal/model"
	"MatchTicker/internal/repository"
	"MatchTicker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MatchHandler 比赛查询接口
type MatchHandler struct {
	tickerService *service.TickerService
	logger        *logrus.Logger
}

// NewMatchHandler 创建 MatchHandler
func NewMatchHandler(db *gorm.DB, logger *logrus.Logger, cfg *config.Config, sources *adapter.SourceRegistry) *MatchHandler {
	return &MatchHandler{
		tickerService: service.NewTickerService(db, logger, cfg, sources),
		logger:        logger,
	}
}

// ListMatches 实时抓取当前比赛列表
// GET /api/matches?game=dota2&source=gosugamers&stream=true
func (h *MatchHandler) ListMatches(c *gin.Context) {
	game := model.Game(c.DefaultQuery("game", string(model.GameAll)))
	source := c.DefaultQuery("source", gosugamers.SourceName)
	withStreams, _ := strconv.ParseBool(c.DefaultQuery("stream", "false"))

	matches, err := h.tickerService.FetchMatches(c.Request.Context(), source, game, withStreams)
	if err != nil {
		h.logger.WithError(err).Error("ListMatches failed")
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": len(matches), "matches": matches})
}

// RecapMatches 实时抓取近期赛果
// GET /api/matches/recap?game=dota2&source=gosugamers
func (h *MatchHandler) RecapMatches(c *gin.Context) {
	game := model.Game(c.DefaultQuery("game", string(model.GameAll)))
	source := c.DefaultQuery("source", gosugamers.SourceName)

	matches, err := h.tickerService.FetchHistory(c.Request.Context(), source, game, false)
	if err != nil {
		h.logger.WithError(err).Error("RecapMatches failed")
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": len(matches), "matches": matches})
}

// ListStored 查询已入库的比赛记录
// GET /api/matches/stored?game=dota2&source=gosugamers&live=true&page=1&page_size=20
func (h *MatchHandler) ListStored(c *gin.Context) {
	filter := repository.MatchFilter{
		Game:   c.Query("game"),
		Source: c.Query("source"),
	}
	if raw := c.Query("live"); raw != "" {
		live, err := strconv.ParseBool(raw)
		if err == nil {
			filter.Live = &live
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	records, total, err := h.tickerService.ListStored(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		h.logger.WithError(err).Error("ListStored failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":     total,
		"page":      page,
		"page_size": pageSize,
		"matches":   records,
	})
}

// ListFields 比赛字段说明，供展示端做字段挑选
// GET /api/matches/fields
func (h *MatchHandler) ListFields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": model.MatchFields})
}
