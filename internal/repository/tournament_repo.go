package repository

import (
	"context"
	"fmt"

	"MatchTicker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TournamentRepository 赛事记录仓储接口
type TournamentRepository interface {
	// SaveTournaments 批量入库，按 url 去重更新
	SaveTournaments(ctx context.Context, records []*model.TournamentRecord) error
	// ListTournaments 按游戏和分类查询赛事记录
	ListTournaments(ctx context.Context, game, category string) ([]*model.TournamentRecord, error)
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository 创建 TournamentRepository 实例
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

// SaveTournaments 批量入库，同一 url 的赛事只刷新可变字段
func (r *tournamentRepository) SaveTournaments(ctx context.Context, records []*model.TournamentRecord) error {
	if len(records) == 0 {
		return nil
	}
	for i := range records {
		if records[i].EventUUID == "" {
			records[i].EventUUID = uuid.NewString()
		}
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "name", "date", "info", "updated_at"}),
	}).Create(records).Error; err != nil {
		return fmt.Errorf("保存赛事记录失败: %w", err)
	}
	return nil
}

// ListTournaments 按游戏和分类查询赛事记录
func (r *tournamentRepository) ListTournaments(ctx context.Context, game, category string) ([]*model.TournamentRecord, error) {
	db := r.db.WithContext(ctx).Model(&model.TournamentRecord{})
	if game != "" {
		db = db.Where("game = ?", game)
	}
	if category != "" {
		db = db.Where("category = ?", category)
	}
	var records []*model.TournamentRecord
	if err := db.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
