package repository

import (
	"context"
	"mimir_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) CountByLesson(ctx context.Context, lessonID string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Activity{}).
		Where("lesson_id = ?", lessonID).
		Count(&count).Error
	return count, err
}

// CreateBatch 在同一事务内复查并插入整组练习，要么全部写入要么都不写入。
// 已存在练习时返回 gorm.ErrDuplicatedKey
func (r *ActivityRepository) CreateBatch(ctx context.Context, lessonID string, activities []model.Activity) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Activity{}).Where("lesson_id = ?", lessonID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		return tx.Create(&activities).Error
	})
}

// ListByLesson 按 order_index 升序，只返回用户自己课程下的练习
func (r *ActivityRepository) ListByLesson(ctx context.Context, userID, lessonID string) ([]model.Activity, error) {
	activities := make([]model.Activity, 0, model.ActivitiesPerLesson)
	err := r.DB.WithContext(ctx).
		Where("lesson_id = ?", lessonID).
		Where("lesson_id IN (?)", r.ownedLessons(userID)).
		Order("order_index asc").
		Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) FindByID(ctx context.Context, userID, id string) (*model.Activity, error) {
	var activity model.Activity
	err := r.DB.WithContext(ctx).
		Where("id = ?", id).
		Where("lesson_id IN (?)", r.ownedLessons(userID)).
		First(&activity).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) SetRevealed(ctx context.Context, id string, revealed bool) error {
	return r.DB.WithContext(ctx).
		Model(&model.Activity{}).
		Where("id = ?", id).
		Update("revealed", revealed).Error
}

func (r *ActivityRepository) ownedLessons(userID string) *gorm.DB {
	return r.DB.Model(&model.Lesson{}).
		Select("id").
		Where("bootcamp_id IN (?)", r.DB.Model(&model.Bootcamp{}).Select("id").Where("user_id = ?", userID))
}
