package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"MatchTicker/internal/config"
	"MatchTicker/internal/model"
	"MatchTicker/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const defaultPushbulletURL = "https://api.pushbullet.com/v2/pushes"

// matchFetcher 通知服务依赖的比赛抓取能力
type matchFetcher interface {
	FetchMatches(ctx context.Context, source string, game model.Game, withStreams bool) ([]*model.Match, error)
}

// NotifyService 开赛提醒服务：筛选即将开始的关注比赛并经Pushbullet推送
type NotifyService struct {
	db         *gorm.DB
	logger     *logrus.Logger
	fetcher    matchFetcher
	history    repository.HistoryRepository
	cfg        *config.Config
	httpClient *http.Client
}

// NotifyRequest 一次提醒任务的参数
type NotifyRequest struct {
	Source  string     // 数据源名称
	Game    model.Game // 游戏标识
	Team    string     // 关注的队伍名前缀，大小写不敏感
	Seconds int64      // 提醒阈值（秒），0时用配置默认值
	Force   bool       // 跳过推送历史去重
}

func NewNotifyService(db *gorm.DB, logger *logrus.Logger, cfg *config.Config, fetcher matchFetcher) *NotifyService {
	return &NotifyService{
		db:         db,
		logger:     logger,
		fetcher:    fetcher,
		history:    repository.NewHistoryRepository(db),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Run 执行一次提醒任务，返回实际推送条数
func (s *NotifyService) Run(ctx context.Context, req NotifyRequest) (int, error) {
	// 1. 编译队伍名匹配（前缀匹配，大小写不敏感）
	teamRe, err := regexp.Compile("(?i)^" + req.Team)
	if err != nil {
		return 0, fmt.Errorf("队伍名表达式非法: %w", err)
	}

	threshold := req.Seconds
	if threshold <= 0 {
		threshold = s.cfg.Notify.ThresholdSecs
	}
	if threshold <= 0 {
		threshold = 900
	}

	// 2. 抓取当前比赛（带直播地址，推送正文里用）
	matches, err := s.fetcher.FetchMatches(ctx, req.Source, req.Game, true)
	if err != nil {
		return 0, fmt.Errorf("%s抓取比赛失败: %w", req.Source, err)
	}

	sent := 0
	for _, m := range matches {
		// 只提醒阈值内开赛、且任一队伍名命中的比赛
		if m.TimeSecs > threshold {
			continue
		}
		if !teamRe.MatchString(m.T1) && !teamRe.MatchString(m.T2) {
			continue
		}

		compositeID := m.CompositeID()
		if !req.Force {
			seen, err := s.history.Seen(ctx, compositeID)
			if err != nil {
				return sent, err
			}
			if seen {
				s.logger.Debugf("比赛%s已推送过，跳过", compositeID)
				continue
			}
		}

		if err := s.push(ctx, m); err != nil {
			return sent, err
		}
		if err := s.history.Append(ctx, &model.NotificationRecord{
			CompositeID: compositeID,
			Team:        req.Team,
			PushedAt:    time.Now(),
		}); err != nil {
			return sent, err
		}
		sent++
	}

	s.logger.Infof("提醒任务完成，推送%d条", sent)
	return sent, nil
}

// push 通过Pushbullet推送单场比赛
func (s *NotifyService) push(ctx context.Context, m *model.Match) error {
	token := s.cfg.Notify.PushbulletToken
	if token == "" {
		return fmt.Errorf("未配置Pushbullet令牌")
	}
	endpoint := s.cfg.Notify.PushbulletURL
	if endpoint == "" {
		endpoint = defaultPushbulletURL
	}

	body := m.URL
	if m.Stream != nil && *m.Stream != "" {
		body = *m.Stream
	}
	payload, err := json.Marshal(map[string]string{
		"type":  "note",
		"title": fmt.Sprintf("%s vs %s in %s", m.T1, m.T2, m.Time),
		"body":  body,
	})
	if err != nil {
		return fmt.Errorf("构造推送内容失败: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("构造推送请求失败: %w", err)
	}
	httpReq.Header.Set("Access-Token", token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return &model.ConnectivityError{URL: endpoint, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &model.BadResponseError{URL: endpoint, Status: resp.StatusCode}
	}
	return nil
}
