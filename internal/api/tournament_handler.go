package api

import (
	"errors"
	"net/http"
	"strconv"

	"MatchTicker/internal/adapter/liquidpedia"
	"MatchTicker/internal/config"
	"MatchTicker/internal/model"
	"MatchTicker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TournamentHandler 锦标赛查询接口
type TournamentHandler struct {
	tournamentService *service.TournamentService
	logger            *logrus.Logger
}

// NewTournamentHandler 创建 TournamentHandler
func NewTournamentHandler(db *gorm.DB, logger *logrus.Logger, cfg *config.Config) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: service.NewTournamentService(db, logger, cfg),
		logger:            logger,
	}
}

// ListTournaments 实时抓取指定分类的赛事列表
// GET /api/tournaments/:game?category=Ongoing&source=liquidpedia
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	game := model.Game(c.Param("game"))
	category := c.DefaultQuery("category", liquidpedia.CategoryOngoing)
	source := c.DefaultQuery("source", liquidpedia.SourceName)

	events, err := h.tournamentService.FetchTournaments(c.Request.Context(), source, game, category)
	if err != nil {
		h.logger.WithError(err).Error("ListTournaments failed")
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": len(events), "tournaments": events})
}

// GetBrackets 抓取赛事页对阵表；render=true时走渲染组件
// GET /api/tournaments/brackets?url=...&render=false&source=liquidpedia
func (h *TournamentHandler) GetBrackets(c *gin.Context) {
	pageURL := c.Query("url")
	if pageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	source := c.DefaultQuery("source", liquidpedia.SourceName)
	render, _ := strconv.ParseBool(c.DefaultQuery("render", "false"))

	if render {
		out, err := h.tournamentService.RenderBrackets(c.Request.Context(), source, pageURL)
		if err != nil {
			if !errors.Is(err, model.ErrBracketRendererMissing) {
				h.logger.WithError(err).Error("RenderBrackets failed")
			}
			c.JSON(statusFor(err), gin.H{"error": err.Error()})
			return
		}
		c.String(http.StatusOK, out)
		return
	}

	brackets, err := h.tournamentService.FetchBrackets(c.Request.Context(), source, pageURL)
	if err != nil {
		h.logger.WithError(err).Error("GetBrackets failed")
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": len(brackets), "brackets": brackets})
}
