package liquidpedia

import (
	"context"
	"strings"

	"MatchTicker/internal/model"

	"github.com/PuerkitoBio/goquery"
)

// FetchBrackets 抓取赛事页并尽力提取对阵表结构（实验性）
func (a *Adapter) FetchBrackets(ctx context.Context, pageURL string) ([]*model.Bracket, error) {
	doc, err := a.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	return FindBrackets(doc), nil
}

// FindBrackets 从解析后的赛事页提取嵌套的对阵表（名称/轮次/队伍/比分）。
// 队伍名或比分缺失的格子跳过；页面没有对阵表时返回空序列。
func FindBrackets(doc *goquery.Document) []*model.Bracket {
	brackets := make([]*model.Bracket, 0)
	doc.Find(".bracket-scroller").Each(func(_ int, scroller *goquery.Selection) {
		// 对阵表名称取最近的前置h3标题
		b := &model.Bracket{
			Name: strings.TrimSpace(scroller.Parent().PrevAllFiltered("h3").First().Text()),
		}
		scroller.Find(".bracket-column-matches").Each(func(_ int, col *goquery.Selection) {
			round := model.BracketRound{}
			col.Find("div[class*='bracket-cell']").Each(func(_ int, cell *goquery.Selection) {
				name := strings.TrimSpace(cell.Find(".team-template-team-bracket span").First().Text())
				score := strings.TrimSpace(cell.Find(".bracket-score").First().Text())
				if name != "" && score != "" {
					round = append(round, model.BracketTeam{Name: name, Score: score})
				}
			})
			b.Rounds = append(b.Rounds, round)
		})
		brackets = append(brackets, b)
	})
	return brackets
}
