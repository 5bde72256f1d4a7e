package model

import (
	"time"

	"gorm.io/datatypes"
)

// MatchRecord 比赛记录持久化模型（按composite_id去重入库）
type MatchRecord struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	MatchUUID      string    `gorm:"column:match_uuid;type:varchar(64);uniqueIndex;not null;comment:全局唯一ID"`
	CompositeID    string    `gorm:"column:composite_id;type:varchar(256);uniqueIndex;not null;comment:组合标识id_t1_t2"`
	Source         string    `gorm:"column:source;type:varchar(32);not null;comment:来源站点"`
	Game           string    `gorm:"column:game;type:varchar(32);index;comment:游戏标识"`
	SiteID         string    `gorm:"column:site_id;type:varchar(32);comment:站点原生比赛ID"`
	URL            string    `gorm:"column:url;type:varchar(256);comment:比赛详情页"`
	TimeText       string    `gorm:"column:time_text;type:varchar(64);comment:原始时间文本"`
	TimeSecs       int64     `gorm:"column:time_secs;type:bigint;not null;comment:距开赛秒数（0=进行中）"`
	Timestamp      int64     `gorm:"column:timestamp;type:bigint;not null;comment:开赛UNIX时间戳"`
	T1             string    `gorm:"column:t1;type:varchar(128);comment:队伍1名称"`
	T1Country      string    `gorm:"column:t1_country;type:varchar(64);comment:队伍1国家"`
	T1CountryShort string    `gorm:"column:t1_country_short;type:varchar(16);comment:队伍1国家简码"`
	T1Score        *string   `gorm:"column:t1_score;type:varchar(16);comment:队伍1比分"`
	T2             string    `gorm:"column:t2;type:varchar(128);comment:队伍2名称"`
	T2Country      string    `gorm:"column:t2_country;type:varchar(64);comment:队伍2国家"`
	T2CountryShort string    `gorm:"column:t2_country_short;type:varchar(16);comment:队伍2国家简码"`
	T2Score        *string   `gorm:"column:t2_score;type:varchar(16);comment:队伍2比分"`
	Stream         *string   `gorm:"column:stream;type:varchar(256);comment:直播频道地址"`
	FetchedAt      time.Time `gorm:"column:fetched_at;type:timestamp;not null;comment:抓取时间"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
	UpdatedAt      time.Time `gorm:"column:updated_at;type:timestamp;default:now();comment:更新时间"`
}

// TournamentRecord 赛事记录持久化模型
type TournamentRecord struct {
	ID        uint64         `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	EventUUID string         `gorm:"column:event_uuid;type:varchar(64);uniqueIndex;not null;comment:全局唯一ID"`
	Source    string         `gorm:"column:source;type:varchar(32);not null;comment:来源站点"`
	Game      string         `gorm:"column:game;type:varchar(32);index;comment:游戏标识"`
	Category  string         `gorm:"column:category;type:varchar(16);comment:分类Ongoing/Completed/Upcoming"`
	Name      string         `gorm:"column:name;type:varchar(256);not null;comment:赛事名称"`
	Date      string         `gorm:"column:date;type:varchar(64);comment:日期自由文本"`
	URL       string         `gorm:"column:url;type:varchar(256);uniqueIndex;not null;comment:赛事详情页"`
	Info      datatypes.JSON `gorm:"column:info;type:jsonb;comment:信息面板标签/值对"`
	CreatedAt time.Time      `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:timestamp;default:now();comment:更新时间"`
}

// NotificationRecord 通知历史（仅追加的去重日志，不更新不删除）
type NotificationRecord struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID"`
	CompositeID string    `gorm:"column:composite_id;type:varchar(256);uniqueIndex;not null;comment:组合标识id_t1_t2"`
	Team        string    `gorm:"column:team;type:varchar(128);comment:命中的队伍过滤条件"`
	PushedAt    time.Time `gorm:"column:pushed_at;type:timestamp;not null;comment:推送时间"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp;default:now();comment:创建时间"`
}

func (MatchRecord) TableName() string        { return "match_records" }
func (TournamentRecord) TableName() string   { return "tournament_records" }
func (NotificationRecord) TableName() string { return "notification_history" }

// NewMatchRecord 把抓取到的Match转换为持久化模型
func NewMatchRecord(m *Match, source string, fetchedAt time.Time) *MatchRecord {
	return &MatchRecord{
		CompositeID:    m.CompositeID(),
		Source:         source,
		Game:           string(m.Game),
		SiteID:         m.ID,
		URL:            m.URL,
		TimeText:       m.Time,
		TimeSecs:       m.TimeSecs,
		Timestamp:      m.Timestamp,
		T1:             m.T1,
		T1Country:      m.T1Country,
		T1CountryShort: m.T1CountryShort,
		T1Score:        m.T1Score,
		T2:             m.T2,
		T2Country:      m.T2Country,
		T2CountryShort: m.T2CountryShort,
		T2Score:        m.T2Score,
		Stream:         m.Stream,
		FetchedAt:      fetchedAt,
	}
}
