// Package gosugamers 实现gosugamers.net比赛列表的抓取与解析
package gosugamers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"MatchTicker/internal/adapter"
	"MatchTicker/internal/config"
	"MatchTicker/internal/interfaces"
	"MatchTicker/internal/model"
	"MatchTicker/internal/utils/httpclient"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

// SourceName 配置与注册表中使用的数据源名称
const SourceName = "gosugamers"

const defaultBaseURL = "http://www.gosugamers.net/"

func init() {
	adapter.Register(SourceName, func(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.SourceAdapter {
		return NewAdapter(cfg, logger)
	})
}

type Adapter struct {
	cfg        *config.SourceConfig
	httpClient *http.Client
	logger     *logrus.Logger
	baseURL    string
	now        func() time.Time // 时间戳注入点，测试时可替换
}

func NewAdapter(cfg *config.SourceConfig, logger *logrus.Logger) *Adapter {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Adapter{
		cfg:        cfg,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
		baseURL:    base,
		now:        time.Now,
	}
}

// GetName ========== 实现SourceAdapter接口 ==========
func (a *Adapter) GetName() string {
	return "GosuGamers"
}

// FetchMatches 抓取进行中/即将开始的比赛列表
func (a *Adapter) FetchMatches(ctx context.Context, game model.Game, withStreams bool) ([]*model.Match, error) {
	listURL, err := a.gameURL(game)
	if err != nil {
		return nil, err
	}
	doc, err := a.fetchDocument(ctx, listURL)
	if err != nil {
		return nil, err
	}
	matches := a.FindMatches(doc)
	if withStreams {
		if err := a.UpdateMatchStreams(ctx, matches); err != nil {
			return nil, err
		}
	}
	return matches, nil
}

// FetchHistory 抓取最近赛果（列表页地址后缀/gosubet）
func (a *Adapter) FetchHistory(ctx context.Context, game model.Game, withStreams bool) ([]*model.Match, error) {
	listURL, err := a.gameURL(game)
	if err != nil {
		return nil, err
	}
	doc, err := a.fetchDocument(ctx, listURL+"/gosubet")
	if err != nil {
		return nil, err
	}
	matches := a.FindHistory(doc)
	if withStreams {
		if err := a.UpdateMatchStreams(ctx, matches); err != nil {
			return nil, err
		}
	}
	return matches, nil
}

// gameURL 校验游戏标识并拼接列表页地址；不支持的游戏在任何网络请求前拒绝
func (a *Adapter) gameURL(game model.Game) (string, error) {
	if !model.IsSupported(model.TickerGames, game) {
		return "", &model.UnsupportedGameError{Game: game}
	}
	return a.baseURL + game.PathSegment(), nil
}

// fetchDocument 抓取并解析一个页面。连接失败与非200状态码均为致命错误，分类上抛。
func (a *Adapter) fetchDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("构造请求失败: %w", err)
	}
	if a.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", a.cfg.UserAgent)
	}
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &model.ConnectivityError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &model.BadResponseError{URL: rawURL, Status: resp.StatusCode}
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("解析%s的HTML失败: %w", rawURL, err)
	}
	return doc, nil
}

// resolveURL 把行内相对链接解析为绝对地址；空链接保持为空
func (a *Adapter) resolveURL(href string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(a.baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
