// Package liquidpedia 实现LiquidPedia锦标赛列表与详情页的抓取解析
package liquidpedia

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"MatchTicker/internal/config"
	"MatchTicker/internal/model"
	"MatchTicker/internal/utils/httpclient"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

// SourceName 配置中使用的数据源名称
const SourceName = "liquidpedia"

const defaultBaseURL = "http://wiki.teamliquid.net/"

// 赛事分类标签
const (
	CategoryOngoing   = "Ongoing"
	CategoryCompleted = "Completed"
	CategoryUpcoming  = "Upcoming"
)

type Adapter struct {
	cfg        *config.SourceConfig
	httpClient *http.Client
	logger     *logrus.Logger
	baseURL    string
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
	}
}

// GetName ========== 实现TournamentAdapter接口 ==========
func (a *Adapter) GetName() string {
	return "LiquidPedia"
}

// FetchTournaments 抓取指定分类下的赛事条目，并逐条抓取详情页的信息面板。
// category为空时默认Ongoing。
func (a *Adapter) FetchTournaments(ctx context.Context, game model.Game, category string) ([]*model.Event, error) {
	if category == "" {
		category = CategoryOngoing
	}
	listURL, err := a.gameURL(game)
	if err != nil {
		return nil, err
	}
	doc, err := a.fetchDocument(ctx, listURL)
	if err != nil {
		return nil, err
	}

	entries := findCategoryEntries(doc, category)
	events := make([]*model.Event, 0, entries.Length())
	var loopErr error
	entries.EachWithBreak(func(_ int, t *goquery.Selection) bool {
		ev := &model.Event{
			Name: strings.TrimSpace(ownText(t)),
			Date: strings.Trim(strings.TrimSpace(t.Find("small").First().Text()), "()"),
			URL:  a.resolveURL(t.AttrOr("href", "")),
		}
		info, err := a.fetchEventInfo(ctx, ev.URL)
		if err != nil {
			loopErr = fmt.Errorf("抓取赛事%q详情页失败: %w", ev.Name, err)
			return false
		}
		ev.Info = info
		events = append(events, ev)
		return true
	})
	if loopErr != nil {
		return nil, loopErr
	}
	return events, nil
}

// findCategoryEntries 主查询：自身文本包含分类标签的li，取其父节点下的全部链接。
// 主查询为空时无条件回退到"COMPLETED"区块（页面标记不一致时的兼容路径，
// 不按请求的分类门控）。
func findCategoryEntries(doc *goquery.Document, category string) *goquery.Selection {
	entries := doc.Find("li").FilterFunction(func(_ int, li *goquery.Selection) bool {
		return strings.Contains(ownText(li), category)
	}).Parent().Find("a")
	if entries.Length() > 0 {
		return entries
	}
	return doc.Find("div").FilterFunction(func(_ int, d *goquery.Selection) bool {
		return strings.Contains(ownText(d), "COMPLETED")
	}).NextAllFiltered("div").ChildrenFiltered("a")
}

// fetchEventInfo 抓取赛事详情页并收集信息面板的全部标签/值对。
// 值带链接时记为{value,url}，否则记为纯文本。
func (a *Adapter) fetchEventInfo(ctx context.Context, eventURL string) (map[string]model.InfoValue, error) {
	doc, err := a.fetchDocument(ctx, eventURL)
	if err != nil {
		return nil, err
	}
	info := make(map[string]model.InfoValue)
	doc.Find("div.infobox-description").Each(func(_ int, label *goquery.Selection) {
		title := strings.Trim(strings.ToLower(strings.TrimSpace(ownText(label))), ":")
		if title == "" {
			return
		}
		valueDivs := label.NextAllFiltered("div")
		iv := model.InfoValue{Value: strings.TrimSpace(valueDivs.Text())}
		if href := valueDivs.ChildrenFiltered("a").First().AttrOr("href", ""); href != "" {
			iv.URL = a.resolveURL(href)
		}
		info[title] = iv
	})
	return info, nil
}

// gameURL 校验游戏标识并拼接列表页地址
func (a *Adapter) gameURL(game model.Game) (string, error) {
	if !model.IsSupported(model.TournamentGames, game) {
		return "", &model.UnsupportedGameError{Game: game}
	}
	return a.baseURL + game.PathSegment(), nil
}

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

// ownText 仅取选中节点自身的直接文本（不含子元素文本），对齐按文本节点定位的查询语义
func ownText(s *goquery.Selection) string {
	return s.Contents().Not("*").Text()
}
