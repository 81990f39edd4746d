package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iamaayush710/Study-Buds/internal/model"
)

// ActivityRepository 学习动态数据访问接口（只追加）
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	ListByUser(ctx context.Context, userID uint) ([]model.Activity, error)
}

// activityRepo ActivityRepository 的 GORM 实现
type activityRepo struct {
	db *gorm.DB
}

// NewActivityRepo 创建 ActivityRepository 实例
func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepo) ListByUser(ctx context.Context, userID uint) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&activities).Error
	return activities, err
}
