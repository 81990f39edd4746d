package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iamaayush710/Study-Buds/internal/model"
)

// AnnouncementRepository 公告数据访问接口
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *model.Announcement) error
	GetByID(ctx context.Context, id uint) (*model.Announcement, error)
	List(ctx context.Context) ([]model.Announcement, error)
	Update(ctx context.Context, announcement *model.Announcement) error
	Delete(ctx context.Context, id uint) error
}

// announcementRepo AnnouncementRepository 的 GORM 实现
type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Create(announcement).Error
}

func (r *announcementRepo) GetByID(ctx context.Context, id uint) (*model.Announcement, error) {
	var announcement model.Announcement
	err := r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		First(&announcement).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (r *announcementRepo) List(ctx context.Context) ([]model.Announcement, error) {
	var announcements []model.Announcement
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&announcements).Error
	return announcements, err
}

func (r *announcementRepo) Update(ctx context.Context, announcement *model.Announcement) error {
	return r.db.WithContext(ctx).Save(announcement).Error
}

func (r *announcementRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		Delete(&model.Announcement{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
