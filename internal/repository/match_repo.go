package repository

import (
	"context"
	"fmt"

	"MatchTicker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchFilter 比赛列表筛选条件
type MatchFilter struct {
	Game   string // 游戏标识：dota2 / counterstrike / ...
	Source string // 来源站点名称
	Live   *bool  // 可选：仅直播中（time_secs = 0）
}

// MatchRepository 比赛记录仓储接口
type MatchRepository interface {
	// SaveMatches 批量入库，按 composite_id 去重更新
	SaveMatches(ctx context.Context, records []*model.MatchRecord) error
	// ListMatches 按过滤条件分页查询比赛记录
	ListMatches(ctx context.Context, filter MatchFilter, page, pageSize int) ([]*model.MatchRecord, int64, error)
	// GetByCompositeID 通过 composite_id 获取单条记录
	GetByCompositeID(ctx context.Context, compositeID string) (*model.MatchRecord, error)
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository 创建 MatchRepository 实例
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

// SaveMatches 批量入库，冲突时只刷新随时间变化的字段
func (r *matchRepository) SaveMatches(ctx context.Context, records []*model.MatchRecord) error {
	if len(records) == 0 {
		return nil
	}
	for i := range records {
		if records[i].MatchUUID == "" {
			records[i].MatchUUID = uuid.NewString() // 生成全局唯一ID
		}
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "composite_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"time_text", "time_secs", "timestamp", "t1_score", "t2_score", "stream", "fetched_at", "updated_at"}),
	}).Create(records).Error; err != nil {
		return fmt.Errorf("保存比赛记录失败: %w", err)
	}
	return nil
}

// ListMatches 按过滤条件分页查询比赛记录
func (r *matchRepository) ListMatches(ctx context.Context, filter MatchFilter, page, pageSize int) ([]*model.MatchRecord, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	db := r.db.WithContext(ctx).Model(&model.MatchRecord{})

	if filter.Game != "" {
		db = db.Where("game = ?", filter.Game)
	}
	if filter.Source != "" {
		db = db.Where("source = ?", filter.Source)
	}
	if filter.Live != nil {
		if *filter.Live {
			db = db.Where("time_secs = 0")
		} else {
			db = db.Where("time_secs > 0")
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []*model.MatchRecord
	if err := db.
		Order("timestamp ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetByCompositeID 通过 composite_id 获取单条记录
func (r *matchRepository) GetByCompositeID(ctx context.Context, compositeID string) (*model.MatchRecord, error) {
	var rec model.MatchRecord
	if err := r.db.WithContext(ctx).
		Where("composite_id = ?", compositeID).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
