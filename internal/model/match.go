package model

import "fmt"

// Match 单场比赛的规范记录（封闭字段集，字段顺序即JSON输出顺序）。
// 字段集之外的访问在编译期即被拒绝；可空字段用指针表达null。
type Match struct {
	URL            string  `json:"url"`              // 比赛详情页绝对链接
	ID             string  `json:"id"`               // 站点分配的比赛ID（从URL提取，可能缺失）
	Game           Game    `json:"game"`             // 所属游戏（按URL子串判定）
	Time           string  `json:"time"`             // 页面展示的原始时间文本（"Live"/"2h 15m"）
	TimeSecs       int64   `json:"time_secs"`        // 距开赛秒数；0=进行中（哨兵值，不表示未知）
	Timestamp      int64   `json:"timestamp"`        // 开赛UNIX时间戳 = 抓取时刻 + time_secs
	T1             string  `json:"t1"`               // 队伍1名称
	T1Country      string  `json:"t1_country"`       // 队伍1国家全称（国旗title属性）
	T1CountryShort string  `json:"t1_country_short"` // 队伍1国家简码（国旗class末位token）
	T1Score        *string `json:"t1_score"`         // 队伍1比分（仅历史赛果，否则null）
	T2             string  `json:"t2"`               // 队伍2名称
	T2Country      string  `json:"t2_country"`       // 队伍2国家全称
	T2CountryShort string  `json:"t2_country_short"` // 队伍2国家简码
	T2Score        *string `json:"t2_score"`         // 队伍2比分
	Stream         *string `json:"stream"`           // 直播频道直连地址（仅进行中比赛，经规范化）
}

// CompositeID 组合唯一标识 id_t1_t2，相同输入字段必然产出相同结果，供下游去重
func (m *Match) CompositeID() string {
	return fmt.Sprintf("%s_%s_%s", m.ID, m.T1, m.T2)
}

// IsLive time_secs==0 表示比赛正在进行
func (m *Match) IsLive() bool {
	return m.TimeSecs == 0
}

// FieldHelp 单个字段的名称与说明
type FieldHelp struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// MatchFields 封闭字段清单（含说明），顺序与Match结构体一致。
// 供帮助文本/模板键枚举使用，一次性生成，不在运行期扩展。
var MatchFields = []FieldHelp{
	{"url", "比赛详情页链接"},
	{"id", "站点分配的比赛ID"},
	{"game", "游戏名称"},
	{"time", "页面展示的原始时间文本"},
	{"time_secs", "距开赛的整数秒（0=进行中）"},
	{"timestamp", "开赛UNIX时间戳（抓取时刻+time_secs）"},
	{"t1", "队伍1名称"},
	{"t1_country", "队伍1国家"},
	{"t1_country_short", "队伍1国家简码"},
	{"t1_score", "队伍1比分（仅历史赛果）"},
	{"t2", "队伍2名称"},
	{"t2_country", "队伍2国家"},
	{"t2_country_short", "队伍2国家简码"},
	{"t2_score", "队伍2比分（仅历史赛果）"},
	{"stream", "直播频道直连地址（仅进行中比赛）"},
}
