package model

import "encoding/json"

// InfoValue 赛事信息面板的值：纯文本，或带链接的{value,url}。
// 不同条目的形态不保证一致，序列化时按是否携带链接自动选择形状。
type InfoValue struct {
	Value string
	URL   string
}

// MarshalJSON 无链接时输出纯字符串，有链接时输出{value,url}对象
func (v InfoValue) MarshalJSON() ([]byte, error) {
	if v.URL == "" {
		return json.Marshal(v.Value)
	}
	return json.Marshal(struct {
		Value string `json:"value"`
		URL   string `json:"url"`
	}{v.Value, v.URL})
}

// Event 单个锦标赛赛事记录
type Event struct {
	Name string               `json:"name"`
	Date string               `json:"date"` // 自由文本（去掉括号的尾部日期说明）
	URL  string               `json:"url"`
	Info map[string]InfoValue `json:"info"` // 小写标签 → 值，采集自详情页信息面板
}

// BracketTeam 对阵表中的一支队伍及其比分
type BracketTeam struct {
	Name  string `json:"name"`
	Score string `json:"score"`
}

// BracketRound 一轮对阵中的全部队伍
type BracketRound []BracketTeam

// Bracket 嵌套的轮次/队伍对阵结构（尽力提取）
type Bracket struct {
	Name   string         `json:"name"`
	Rounds []BracketRound `json:"rounds"`
}
