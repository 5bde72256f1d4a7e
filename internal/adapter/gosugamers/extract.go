package gosugamers

import (
	"regexp"
	"strings"

	"MatchTicker/internal/model"
	"MatchTicker/internal/timetext"

	"github.com/PuerkitoBio/goquery"
)

var reMatchID = regexp.MustCompile(`matches/(\d+)`)

// FindMatches 在解析后的列表页文档中定位比赛行（table#gb-matches），按文档顺序产出记录。
// 锚点表格不存在时返回空序列而非错误（休赛期没有比赛是合法状态）。
func (a *Adapter) FindMatches(doc *goquery.Document) []*model.Match {
	matches := make([]*model.Match, 0)
	doc.Find("table#gb-matches tr").Each(func(_ int, row *goquery.Selection) {
		matches = append(matches, a.extractMatch(row))
	})
	return matches
}

// FindHistory 定位"Recent"标题之下的赛果行
func (a *Adapter) FindHistory(doc *goquery.Document) []*model.Match {
	matches := make([]*model.Match, 0)
	doc.Find("h2").Each(func(_ int, h *goquery.Selection) {
		if !strings.Contains(h.Text(), "Recent") {
			return
		}
		h.Parent().Find("tr").Each(func(_ int, row *goquery.Selection) {
			matches = append(matches, a.extractMatch(row))
		})
	})
	return matches
}

// extractMatch 从单行提取全部字段。单个字段取不到时退化为空串/null，
// 绝不让一行的缺损中断整次提取。
func (a *Adapter) extractMatch(row *goquery.Selection) *model.Match {
	m := &model.Match{}

	if href, ok := row.Find("a").First().Attr("href"); ok {
		m.URL = a.resolveURL(strings.TrimSpace(href))
	}
	if sub := reMatchID.FindStringSubmatch(m.URL); sub != nil {
		m.ID = sub[1]
	}

	// "all"聚合列表逐行判定游戏：按URL子串匹配，首个命中者生效
	lowered := strings.ToLower(m.URL)
	for _, g := range model.TickerGames {
		if strings.Contains(lowered, string(g)) {
			m.Game = g
			break
		}
	}

	m.Time = strings.TrimSpace(row.Find("td.status span").First().Text())
	m.TimeSecs = timetext.Seconds(m.Time)
	// 时间戳在提取时刻一次性定格，事后无法重新推导
	m.Timestamp = a.now().Unix() + m.TimeSecs

	m.T1, m.T1Country, m.T1CountryShort = extractSide(row, "opp1")
	m.T2, m.T2Country, m.T2CountryShort = extractSide(row, "opp2")

	// 比分元素只出现在历史赛果行；缺失时保持null
	scores := row.Find(".score")
	m.T1Score = scoreText(scores, 0)
	m.T2Score = scoreText(scores, 1)

	return m
}

// extractSide 提取一侧队伍的名称与国旗元信息（class包含opp1/opp2的标记元素）。
// 名称取首个带文本的子span，国家取国旗span的title属性，
// 简码取国旗span的class属性按空白切分后的末位token；缺失一律为空串。
func extractSide(row *goquery.Selection, marker string) (name, country, countryShort string) {
	side := row.Find("span[class*='" + marker + "']").First()

	side.ChildrenFiltered("span").Each(func(_ int, s *goquery.Selection) {
		if name == "" {
			name = strings.TrimSpace(s.Text())
		}
	})

	flag := side.Find("span[class*='flag']").First()
	country = strings.TrimSpace(flag.AttrOr("title", ""))
	if class, ok := flag.Attr("class"); ok {
		fields := strings.Fields(class)
		if len(fields) > 0 {
			countryShort = fields[len(fields)-1]
		}
	}
	return
}

func scoreText(scores *goquery.Selection, i int) *string {
	if i >= scores.Length() {
		return nil
	}
	s := strings.TrimSpace(scores.Eq(i).Text())
	return &s
}
