package gosugamers

import (
	"context"
	"fmt"
	"regexp"

	"MatchTicker/internal/model"
	"MatchTicker/internal/streamurl"

	"github.com/PuerkitoBio/goquery"
)

var reEnglish = regexp.MustCompile(`(?i)english`)

// UpdateMatchStreams 为进行中的比赛补全直播地址（对每场二次抓取详情页）。
// 这是整个流水线里唯一把网络失败当作致命错误的环节：任何一场的详情页抓不到
// 就让整次操作失败并上抛，而不是降级。time_secs非0的记录原样透传，
// 输出与输入严格1:1且保持顺序。
func (a *Adapter) UpdateMatchStreams(ctx context.Context, matches []*model.Match) error {
	for _, m := range matches {
		if m.TimeSecs != 0 {
			continue
		}
		doc, err := a.fetchDocument(ctx, m.URL)
		if err != nil {
			return fmt.Errorf("抓取比赛%s详情页失败: %w", m.ID, err)
		}
		if src := findEnglishStream(doc); src != "" {
			clean := streamurl.Normalize(src)
			m.Stream = &clean
		}
	}
	return nil
}

// findEnglishStream 在直播面板中定位链接文本匹配english（不区分大小写）
// 的首个子区块，取其iframe的src；找不到返回空串
func findEnglishStream(doc *goquery.Document) string {
	var src string
	doc.Find("div.matches-streams span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !reEnglish.MatchString(s.Find("a").Text()) {
			return true
		}
		if v, ok := s.Find("iframe").Attr("src"); ok {
			src = v
			return false
		}
		return true
	})
	return src
}
