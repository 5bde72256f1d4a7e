package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MatchTicker/internal/config"
	"MatchTicker/internal/model"

	"github.com/sirupsen/logrus"
)

type fakeFetcher struct {
	matches []*model.Match
}

func (f *fakeFetcher) FetchMatches(_ context.Context, _ string, _ model.Game, _ bool) ([]*model.Match, error) {
	return f.matches, nil
}

type fakeHistory struct {
	seen map[string]bool
}

func (h *fakeHistory) Seen(_ context.Context, compositeID string) (bool, error) {
	return h.seen[compositeID], nil
}

func (h *fakeHistory) Append(_ context.Context, rec *model.NotificationRecord) error {
	h.seen[rec.CompositeID] = true
	return nil
}

type pushedNote struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func newNotifyFixture(t *testing.T, matches []*model.Match) (*NotifyService, *fakeHistory, *[]pushedNote, func()) {
	t.Helper()
	pushed := &[]pushedNote{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Access-Token") != "test-token" {
			t.Errorf("missing access token header")
		}
		var note pushedNote
		if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
			t.Errorf("decode push payload: %v", err)
		}
		*pushed = append(*pushed, note)
	}))

	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	history := &fakeHistory{seen: map[string]bool{}}
	svc := &NotifyService{
		logger:  logger,
		fetcher: &fakeFetcher{matches: matches},
		history: history,
		cfg: &config.Config{
			Notify: config.NotifyConfig{
				PushbulletToken: "test-token",
				PushbulletURL:   srv.URL,
				ThresholdSecs:   900,
			},
		},
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	return svc, history, pushed, srv.Close
}

func sampleMatches() []*model.Match {
	stream := "http://twitch.tv/dendi"
	return []*model.Match{
		{ID: "1", T1: "Navi", T2: "OG", Time: "Live", TimeSecs: 0, URL: "http://example.com/matches/1", Stream: &stream},
		{ID: "2", T1: "Secret", T2: "Navi Junior", Time: "10m", TimeSecs: 600, URL: "http://example.com/matches/2"},
		{ID: "3", T1: "Liquid", T2: "Spirit", Time: "5m", TimeSecs: 300, URL: "http://example.com/matches/3"},
		{ID: "4", T1: "Navi", T2: "Tundra", Time: "2h", TimeSecs: 7200, URL: "http://example.com/matches/4"},
	}
}

func TestNotifyRun(t *testing.T) {
	svc, history, pushed, cleanup := newNotifyFixture(t, sampleMatches())
	defer cleanup()

	sent, err := svc.Run(context.Background(), NotifyRequest{
		Source: "gosugamers",
		Game:   model.GameDota2,
		Team:   "navi",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// 命中：进行中的Navi vs OG、600秒后的Secret vs Navi Junior（t2前缀命中）。
	// Liquid vs Spirit队名不匹配，Navi vs Tundra超出阈值。
	if sent != 2 {
		t.Fatalf("sent = %d, want 2", sent)
	}
	if len(*pushed) != 2 {
		t.Fatalf("pushed %d notes, want 2", len(*pushed))
	}

	first := (*pushed)[0]
	if first.Type != "note" {
		t.Errorf("push type = %q, want note", first.Type)
	}
	if first.Title != "Navi vs OG in Live" {
		t.Errorf("push title = %q", first.Title)
	}
	// 进行中的比赛正文用直播地址，其余用详情页链接
	if first.Body != "http://twitch.tv/dendi" {
		t.Errorf("push body = %q", first.Body)
	}
	if (*pushed)[1].Body != "http://example.com/matches/2" {
		t.Errorf("second push body = %q", (*pushed)[1].Body)
	}

	if !history.seen["1_Navi_OG"] || !history.seen["2_Secret_Navi Junior"] {
		t.Errorf("history not recorded: %v", history.seen)
	}
}

func TestNotifyRunDedupe(t *testing.T) {
	svc, _, pushed, cleanup := newNotifyFixture(t, sampleMatches())
	defer cleanup()

	req := NotifyRequest{Source: "gosugamers", Game: model.GameDota2, Team: "navi"}
	if _, err := svc.Run(context.Background(), req); err != nil {
		t.Fatalf("first run: %v", err)
	}
	// 第二次运行全部命中历史，静默跳过
	sent, err := svc.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if sent != 0 {
		t.Errorf("second run sent = %d, want 0", sent)
	}
	if len(*pushed) != 2 {
		t.Errorf("pushed %d notes total, want 2", len(*pushed))
	}

	// force跳过去重
	req.Force = true
	sent, err = svc.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("forced run: %v", err)
	}
	if sent != 2 {
		t.Errorf("forced run sent = %d, want 2", sent)
	}
}

func TestNotifyRunCustomThreshold(t *testing.T) {
	svc, _, pushed, cleanup := newNotifyFixture(t, sampleMatches())
	defer cleanup()

	// 阈值拉到3小时后，Navi vs Tundra也命中
	sent, err := svc.Run(context.Background(), NotifyRequest{
		Source:  "gosugamers",
		Game:    model.GameDota2,
		Team:    "navi",
		Seconds: 10800,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sent != 3 {
		t.Errorf("sent = %d, want 3", sent)
	}
	if len(*pushed) != 3 {
		t.Errorf("pushed %d notes, want 3", len(*pushed))
	}
}

func TestNotifyRunMissingToken(t *testing.T) {
	svc, _, _, cleanup := newNotifyFixture(t, sampleMatches())
	defer cleanup()

	svc.cfg.Notify.PushbulletToken = ""
	if _, err := svc.Run(context.Background(), NotifyRequest{Source: "gosugamers", Game: model.GameDota2, Team: "navi"}); err == nil {
		t.Fatal("expected error when token missing")
	}
}
