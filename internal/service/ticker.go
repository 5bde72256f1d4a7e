package service

import (
	"context"
	"fmt"
	"time"

	"MatchTicker/internal/adapter"
	"MatchTicker/internal/config"
	"MatchTicker/internal/interfaces"
	"MatchTicker/internal/model"
	"MatchTicker/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TickerService 比赛抓取与同步服务
type TickerService struct {
	db      *gorm.DB
	logger  *logrus.Logger
	repo    repository.MatchRepository
	cfg     *config.Config
	sources *adapter.SourceRegistry
}

func NewTickerService(db *gorm.DB, logger *logrus.Logger, cfg *config.Config, sources *adapter.SourceRegistry) *TickerService {
	return &TickerService{
		db:      db,
		logger:  logger,
		repo:    repository.NewMatchRepository(db),
		cfg:     cfg,
		sources: sources,
	}
}

// FetchMatches 实时抓取某来源指定游戏的当前比赛列表
func (s *TickerService) FetchMatches(ctx context.Context, source string, game model.Game, withStreams bool) ([]*model.Match, error) {
	ad, err := s.sources.GetAdapter(source)
	if err != nil {
		return nil, err
	}
	return ad.FetchMatches(ctx, game, withStreams)
}

// FetchHistory 实时抓取某来源指定游戏的近期赛果
func (s *TickerService) FetchHistory(ctx context.Context, source string, game model.Game, withStreams bool) ([]*model.Match, error) {
	ad, err := s.sources.GetAdapter(source)
	if err != nil {
		return nil, err
	}
	return ad.FetchHistory(ctx, game, withStreams)
}

// ListStored 查询已入库的比赛记录
func (s *TickerService) ListStored(ctx context.Context, filter repository.MatchFilter, page, pageSize int) ([]*model.MatchRecord, int64, error) {
	return s.repo.ListMatches(ctx, filter, page, pageSize)
}

// SyncGame 抓取指定来源的比赛并入库，返回入库条数
func (s *TickerService) SyncGame(ctx context.Context, source string, game model.Game) (int, error) {
	// 1. 抓取比赛（带直播地址，入库后供通知服务复用）
	matches, err := s.FetchMatches(ctx, source, game, true)
	if err != nil {
		return 0, fmt.Errorf("%s抓取比赛失败: %w", source, err)
	}
	if len(matches) == 0 {
		s.logger.Warnf("%s未抓取到%s比赛", source, game)
		return 0, nil
	}

	// 2. 转换为数据库模型
	fetchedAt := time.Now()
	records := interfaces.MapSlice(matches, func(m *model.Match) *model.MatchRecord {
		return model.NewMatchRecord(m, source, fetchedAt)
	})

	// 3. 入库
	if err := s.repo.SaveMatches(ctx, records); err != nil {
		return 0, fmt.Errorf("%s入库失败: %w", source, err)
	}

	s.logger.Infof("%s同步完成，共%d场%s比赛", source, len(records), game)
	return len(records), nil
}
