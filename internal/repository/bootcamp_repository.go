package repository

import (
	"context"
	"mimir_backend/internal/model"

	"gorm.io/gorm"
)

// BootcampRepository 训练营数据访问，所有查询都按 user_id 限定
type BootcampRepository struct {
	DB *gorm.DB
}

func NewBootcampRepository(db *gorm.DB) *BootcampRepository {
	return &BootcampRepository{DB: db}
}

func (r *BootcampRepository) Create(ctx context.Context, bootcamp *model.Bootcamp) error {
	return r.DB.WithContext(ctx).Create(bootcamp).Error
}

// FindByID 查找用户自己的训练营，不存在或不属于该用户时返回 gorm.ErrRecordNotFound
func (r *BootcampRepository) FindByID(ctx context.Context, userID, id string) (*model.Bootcamp, error) {
	var bootcamp model.Bootcamp
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&bootcamp).Error
	if err != nil {
		return nil, err
	}
	return &bootcamp, nil
}

// ListByUser 按创建时间倒序
func (r *BootcampRepository) ListByUser(ctx context.Context, userID string) ([]model.Bootcamp, error) {
	var bootcamps []model.Bootcamp
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bootcamps).Error
	return bootcamps, err
}

// AdvanceDay 条件更新：仅当 current_day 仍等于 expectedDay 时加一。
// 返回 false 表示状态已被并发修改或不满足条件
func (r *BootcampRepository) AdvanceDay(ctx context.Context, userID, id string, expectedDay int) (bool, error) {
	result := r.DB.WithContext(ctx).
		Model(&model.Bootcamp{}).
		Where("id = ? AND user_id = ? AND current_day = ? AND current_day <= duration_days", id, userID, expectedDay).
		Updates(map[string]interface{}{
			"current_day": gorm.Expr("current_day + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// Delete 在一个事务内级联删除练习、课程和训练营
func (r *BootcampRepository) Delete(ctx context.Context, userID, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bootcamp model.Bootcamp
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&bootcamp).Error; err != nil {
			return err
		}

		lessonIDs := tx.Model(&model.Lesson{}).Select("id").Where("bootcamp_id = ?", id)
		if err := tx.Where("lesson_id IN (?)", lessonIDs).Delete(&model.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bootcamp_id = ?", id).Delete(&model.Lesson{}).Error; err != nil {
			return err
		}
		return tx.Delete(&bootcamp).Error
	})
}
