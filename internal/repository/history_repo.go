package repository

import (
	"context"
	"fmt"

	"MatchTicker/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HistoryRepository 推送历史仓储接口，只追加不修改
type HistoryRepository interface {
	// Seen 判断 composite_id 是否已经推送过
	Seen(ctx context.Context, compositeID string) (bool, error)
	// Append 追加一条推送记录，重复时静默忽略
	Append(ctx context.Context, rec *model.NotificationRecord) error
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository 创建 HistoryRepository 实例
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// Seen 判断 composite_id 是否已经推送过
func (r *historyRepository) Seen(ctx context.Context, compositeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.NotificationRecord{}).
		Where("composite_id = ?", compositeID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("查询推送历史失败: %w", err)
	}
	return count > 0, nil
}

// Append 追加一条推送记录，同一 composite_id 只保留首条
func (r *historyRepository) Append(ctx context.Context, rec *model.NotificationRecord) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "composite_id"}},
		DoNothing: true,
	}).Create(rec).Error; err != nil {
		return fmt.Errorf("写入推送历史失败: %w", err)
	}
	return nil
}
