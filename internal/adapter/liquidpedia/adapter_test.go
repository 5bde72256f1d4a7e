package liquidpedia

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"MatchTicker/internal/config"
	"MatchTicker/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

const tournamentListHTML = `<html><body>
<ul>
  <li>Ongoing Tournaments</li>
  <li><a href="/dota2/The_Major">The Major <small>(Aug 10 - Aug 20)</small></a></li>
</ul>
</body></html>`

const eventDetailHTML = `<html><body>
<div class="fo-nttax-infobox">
  <div class="infobox-cell"><div class="infobox-description">Organizer:</div><div><a href="/Valve">Valve</a></div></div>
  <div class="infobox-cell"><div class="infobox-description">Prize pool:</div><div>$1,000,000</div></div>
  <div class="infobox-cell"><div class="infobox-description"></div><div>ignored</div></div>
</div>
</body></html>`

const completedFallbackHTML = `<html><body>
<div>
  <div>COMPLETED TOURNAMENTS</div>
  <div><a href="/dota2/Old_Event">Old Event</a></div>
</div>
</body></html>`

func testAdapter(t *testing.T, baseURL string) *Adapter {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)
	return NewAdapter(&config.SourceConfig{BaseURL: baseURL, Timeout: 5}, logger)
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestFetchTournaments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/dota2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(tournamentListHTML))
	})
	mux.HandleFunc("/dota2/The_Major", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(eventDetailHTML))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := testAdapter(t, srv.URL+"/")
	events, err := a.FetchTournaments(context.Background(), model.GameDota2, CategoryOngoing)
	if err != nil {
		t.Fatalf("FetchTournaments: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	ev := events[0]
	if ev.Name != "The Major" {
		t.Errorf("Name = %q, want The Major", ev.Name)
	}
	if ev.Date != "Aug 10 - Aug 20" {
		t.Errorf("Date = %q, want Aug 10 - Aug 20", ev.Date)
	}
	if ev.URL != srv.URL+"/dota2/The_Major" {
		t.Errorf("URL = %q", ev.URL)
	}

	// 标签小写去冒号；带链接的值记为{value,url}，纯文本值url为空；空标签跳过
	if len(ev.Info) != 2 {
		t.Fatalf("got %d info entries, want 2: %v", len(ev.Info), ev.Info)
	}
	org := ev.Info["organizer"]
	if org.Value != "Valve" || org.URL != srv.URL+"/Valve" {
		t.Errorf("organizer = %+v", org)
	}
	prize := ev.Info["prize pool"]
	if prize.Value != "$1,000,000" || prize.URL != "" {
		t.Errorf("prize pool = %+v", prize)
	}
}

func TestFetchTournamentsUnsupportedGame(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s", r.URL.Path)
	}))
	defer srv.Close()

	a := testAdapter(t, srv.URL+"/")
	_, err := a.FetchTournaments(context.Background(), model.GameLol, CategoryOngoing)
	var unsupported *model.UnsupportedGameError
	if !errors.As(err, &unsupported) {
		t.Fatalf("err = %v, want UnsupportedGameError", err)
	}
}

func TestFindCategoryEntriesFallback(t *testing.T) {
	// 主查询无命中时，无条件回退到COMPLETED区块
	entries := findCategoryEntries(parseDoc(t, completedFallbackHTML), CategoryOngoing)
	if entries.Length() != 1 {
		t.Fatalf("got %d fallback entries, want 1", entries.Length())
	}
	if href := entries.AttrOr("href", ""); href != "/dota2/Old_Event" {
		t.Errorf("fallback entry href = %q", href)
	}
}

func TestFindCategoryEntriesEmpty(t *testing.T) {
	entries := findCategoryEntries(parseDoc(t, `<html><body><p>nothing here</p></body></html>`), CategoryOngoing)
	if entries.Length() != 0 {
		t.Errorf("got %d entries from empty page, want 0", entries.Length())
	}
}
