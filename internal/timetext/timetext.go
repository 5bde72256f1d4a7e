// Package timetext 解析比赛列表页展示用的相对时间文本（"2h 30m"、"Live"、"3d"）
package timetext

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reWeeks   = regexp.MustCompile(`(\d+)w`)
	reDays    = regexp.MustCompile(`(\d+)d`)
	reHours   = regexp.MustCompile(`(\d+)h`)
	reMinutes = regexp.MustCompile(`(\d+)m`)
)

// Seconds 把展示文本转换为距开赛的整数秒。
// 包含"live"（不区分大小写）返回0（进行中哨兵值）；
// 否则独立扫描 w/d/h/m 各分量（任意子集、任意顺序），缺失按0计；
// 空文本或完全不匹配返回0，永不报错、永不为负。
func Seconds(text string) int64 {
	text = strings.ToLower(strings.TrimSpace(text))
	if strings.Contains(text, "live") {
		return 0
	}
	var secs int64
	secs += component(reWeeks, text) * 604800
	secs += component(reDays, text) * 86400
	secs += component(reHours, text) * 3600
	secs += component(reMinutes, text) * 60
	return secs
}

func component(re *regexp.Regexp, text string) int64 {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
