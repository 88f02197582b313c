package repository

import (
	"context"
	"mimir_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

// Create 依赖 (bootcamp_id, day_number) 唯一索引，重复时返回 gorm.ErrDuplicatedKey
func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.DB.WithContext(ctx).Create(lesson).Error
}

func (r *LessonRepository) ExistsForDay(ctx context.Context, bootcampID string, dayNumber int) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Lesson{}).
		Where("bootcamp_id = ? AND day_number = ?", bootcampID, dayNumber).
		Count(&count).Error
	return count > 0, err
}

// FindByDay 按训练营和天数查找，训练营需属于该用户
func (r *LessonRepository) FindByDay(ctx context.Context, userID, bootcampID string, dayNumber int) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.WithContext(ctx).
		Where("bootcamp_id = ? AND day_number = ?", bootcampID, dayNumber).
		Where("bootcamp_id IN (?)", r.ownedBootcamps(userID)).
		First(&lesson).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) FindByID(ctx context.Context, userID, id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.WithContext(ctx).
		Where("id = ?", id).
		Where("bootcamp_id IN (?)", r.ownedBootcamps(userID)).
		First(&lesson).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// ListDays 已生成课程的天数，升序
func (r *LessonRepository) ListDays(ctx context.Context, bootcampID string) ([]int, error) {
	var days []int
	err := r.DB.WithContext(ctx).
		Model(&model.Lesson{}).
		Where("bootcamp_id = ?", bootcampID).
		Order("day_number asc").
		Pluck("day_number", &days).Error
	return days, err
}

func (r *LessonRepository) ownedBootcamps(userID string) *gorm.DB {
	return r.DB.Model(&model.Bootcamp{}).Select("id").Where("user_id = ?", userID)
}
