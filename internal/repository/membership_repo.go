package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iamaayush710/Study-Buds/internal/model"
)

// MembershipRepository 小组成员数据访问接口
type MembershipRepository interface {
	Create(ctx context.Context, membership *model.Membership) error
	ListByGroup(ctx context.Context, groupID uint) ([]model.Membership, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Delete(ctx context.Context, groupID, userID uint) error
}

// membershipRepo MembershipRepository 的 GORM 实现
type membershipRepo struct {
	db *gorm.DB
}

// NewMembershipRepo 创建 MembershipRepository 实例
func NewMembershipRepo(db *gorm.DB) MembershipRepository {
	return &membershipRepo{db: db}
}

func (r *membershipRepo) Create(ctx context.Context, membership *model.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *membershipRepo) ListByGroup(ctx context.Context, groupID uint) ([]model.Membership, error) {
	var memberships []model.Membership
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("study_group_id = ?", groupID).
		Find(&memberships).Error
	return memberships, err
}

func (r *membershipRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

func (r *membershipRepo) Delete(ctx context.Context, groupID, userID uint) error {
	res := r.db.WithContext(ctx).
		Where("study_group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.Membership{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
