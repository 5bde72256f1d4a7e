package interfaces

import (
	"context"

	"MatchTicker/internal/config"
	"MatchTicker/internal/model"

	"github.com/sirupsen/logrus"
)

// SourceAdapter 所有比赛数据源必须实现的核心接口
type SourceAdapter interface {
	GetName() string // 数据源名称
	// FetchMatches 抓取进行中/即将开始的比赛；withStreams时对进行中比赛补全直播地址
	FetchMatches(ctx context.Context, game model.Game, withStreams bool) ([]*model.Match, error)
	// FetchHistory 抓取最近赛果
	FetchHistory(ctx context.Context, game model.Game, withStreams bool) ([]*model.Match, error)
}

// TournamentAdapter 锦标赛数据源接口
type TournamentAdapter interface {
	GetName() string
	// FetchTournaments 抓取指定分类（Ongoing/Completed/Upcoming）下的赛事及其信息面板
	FetchTournaments(ctx context.Context, game model.Game, category string) ([]*model.Event, error)
	// FetchBrackets 尽力提取赛事页的对阵表结构
	FetchBrackets(ctx context.Context, pageURL string) ([]*model.Bracket, error)
}

// BracketRenderer 对阵表渲染协作组件；未注册时对阵表展示返回能力缺失错误
type BracketRenderer interface {
	Render(brackets []*model.Bracket) (string, error)
}

// Factory 数据源适配器工厂函数签名
// 入参：数据源配置、日志实例
// 出参：实现SourceAdapter接口的适配器实例
type Factory func(cfg *config.SourceConfig, logger *logrus.Logger) SourceAdapter
