package service

import (
	"context"
	"encoding/json"
	"fmt"

	"MatchTicker/internal/adapter/liquidpedia"
	"MatchTicker/internal/config"
	"MatchTicker/internal/interfaces"
	"MatchTicker/internal/model"
	"MatchTicker/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TournamentService 锦标赛抓取服务
type TournamentService struct {
	db     *gorm.DB
	logger *logrus.Logger
	repo   repository.TournamentRepository
	cfg    *config.Config
	// 适配器工厂：新增赛事数据源仅需添加此处
	adapterFactory map[string]func(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.TournamentAdapter
	// 对阵表渲染组件，未注册时RenderBrackets返回能力缺失错误
	renderer interfaces.BracketRenderer
}

func NewTournamentService(db *gorm.DB, logger *logrus.Logger, cfg *config.Config) *TournamentService {
	return &TournamentService{
		db:     db,
		logger: logger,
		repo:   repository.NewTournamentRepository(db),
		cfg:    cfg,
		adapterFactory: map[string]func(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.TournamentAdapter{
			liquidpedia.SourceName: func(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.TournamentAdapter {
				return liquidpedia.NewAdapter(cfg, logger)
			},
		},
	}
}

// SetBracketRenderer 注册对阵表渲染组件
func (s *TournamentService) SetBracketRenderer(r interfaces.BracketRenderer) {
	s.renderer = r
}

func (s *TournamentService) buildAdapter(source string) (interfaces.TournamentAdapter, error) {
	adapterBuilder, ok := s.adapterFactory[source]
	if !ok {
		return nil, fmt.Errorf("未支持的赛事数据源: %s", source)
	}
	adapterCfg, ok := s.cfg.Sources[source]
	if !ok {
		return nil, fmt.Errorf("未获取到数据源配置: %s", source)
	}
	return adapterBuilder(&adapterCfg, s.logger), nil
}

// FetchTournaments 实时抓取指定分类下的赛事列表及信息面板，并入库
func (s *TournamentService) FetchTournaments(ctx context.Context, source string, game model.Game, category string) ([]*model.Event, error) {
	ad, err := s.buildAdapter(source)
	if err != nil {
		return nil, err
	}

	events, err := ad.FetchTournaments(ctx, game, category)
	if err != nil {
		return nil, fmt.Errorf("%s抓取赛事失败: %w", source, err)
	}
	if len(events) == 0 {
		s.logger.Warnf("%s未抓取到%s赛事", source, game)
		return events, nil
	}

	// 转换为数据库模型并入库，入库失败不影响实时返回
	records := make([]*model.TournamentRecord, 0, len(events))
	for _, ev := range events {
		info, err := json.Marshal(ev.Info)
		if err != nil {
			s.logger.WithError(err).Warnf("赛事信息序列化失败: %s", ev.Name)
			info = []byte("{}")
		}
		records = append(records, &model.TournamentRecord{
			EventUUID: uuid.NewString(),
			Source:    source,
			Game:      string(game),
			Category:  category,
			Name:      ev.Name,
			Date:      ev.Date,
			URL:       ev.URL,
			Info:      datatypes.JSON(info),
		})
	}
	if err := s.repo.SaveTournaments(ctx, records); err != nil {
		s.logger.WithError(err).Errorf("%s赛事入库失败", source)
	} else {
		s.logger.Infof("%s同步完成，共%d个%s赛事", source, len(records), game)
	}

	return events, nil
}

// ListStored 查询已入库的赛事记录
func (s *TournamentService) ListStored(ctx context.Context, game, category string) ([]*model.TournamentRecord, error) {
	return s.repo.ListTournaments(ctx, game, category)
}

// FetchBrackets 抓取指定赛事页的对阵表
func (s *TournamentService) FetchBrackets(ctx context.Context, source, pageURL string) ([]*model.Bracket, error) {
	ad, err := s.buildAdapter(source)
	if err != nil {
		return nil, err
	}
	return ad.FetchBrackets(ctx, pageURL)
}

// RenderBrackets 抓取并渲染对阵表；未注册渲染组件时直接返回能力缺失错误，不发起抓取
func (s *TournamentService) RenderBrackets(ctx context.Context, source, pageURL string) (string, error) {
	if s.renderer == nil {
		return "", model.ErrBracketRendererMissing
	}
	brackets, err := s.FetchBrackets(ctx, source, pageURL)
	if err != nil {
		return "", err
	}
	return s.renderer.Render(brackets)
}
