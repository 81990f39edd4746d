package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iamaayush710/Study-Buds/internal/model"
)

// StudyGroupRepository 学习小组数据访问接口
type StudyGroupRepository interface {
	Create(ctx context.Context, group *model.StudyGroup) error
	GetByID(ctx context.Context, id uint) (*model.StudyGroup, error)
	List(ctx context.Context) ([]model.StudyGroup, error)
	Update(ctx context.Context, group *model.StudyGroup) error
	Delete(ctx context.Context, id uint) error
}

// studyGroupRepo StudyGroupRepository 的 GORM 实现
type studyGroupRepo struct {
	db *gorm.DB
}

// NewStudyGroupRepo 创建 StudyGroupRepository 实例
func NewStudyGroupRepo(db *gorm.DB) StudyGroupRepository {
	return &studyGroupRepo{db: db}
}

func (r *studyGroupRepo) Create(ctx context.Context, group *model.StudyGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *studyGroupRepo) GetByID(ctx context.Context, id uint) (*model.StudyGroup, error) {
	var group model.StudyGroup
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("study_group_id = ?", id).
		First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// List 返回所有小组，预加载所属课程（用于响应中的课程名）
func (r *studyGroupRepo) List(ctx context.Context) ([]model.StudyGroup, error) {
	var groups []model.StudyGroup
	err := r.db.WithContext(ctx).
		Preload("Course").
		Order("group_name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *studyGroupRepo) Update(ctx context.Context, group *model.StudyGroup) error {
	return r.db.WithContext(ctx).Save(group).Error
}

func (r *studyGroupRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("study_group_id = ?", id).Delete(&model.StudyGroup{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
