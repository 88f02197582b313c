package service

import (
	"context"
	"errors"
	"fmt"
	"mimir_backend/internal/model"
	"mimir_backend/internal/repository"
	"mimir_backend/internal/util"

	"gorm.io/gorm"
)

// ProgressionGuard 顺序解锁规则：不能生成未来天的课程，不能跳天完成，不能重复生成
type ProgressionGuard struct {
	BootcampRepo *repository.BootcampRepository
	LessonRepo   *repository.LessonRepository
	ActivityRepo *repository.ActivityRepository
}

func NewProgressionGuard(
	bootcampRepo *repository.BootcampRepository,
	lessonRepo *repository.LessonRepository,
	activityRepo *repository.ActivityRepository,
) *ProgressionGuard {
	return &ProgressionGuard{
		BootcampRepo: bootcampRepo,
		LessonRepo:   lessonRepo,
		ActivityRepo: activityRepo,
	}
}

// CheckLessonUnlocked 只允许生成 current_day 及之前的课程
func CheckLessonUnlocked(b *model.Bootcamp, dayNumber int) error {
	if dayNumber > b.CurrentDay {
		return util.NewForbidden(fmt.Sprintf("You must complete Day %d first", b.CurrentDay))
	}
	return nil
}

// CheckCompletable 只有 current_day 本身可以被完成
func CheckCompletable(b *model.Bootcamp, dayNumber int) error {
	if dayNumber > b.DurationDays {
		return util.NewBadRequest("Invalid day number")
	}
	if b.Status() == model.BootcampCompleted {
		return util.NewBadRequest("Bootcamp already completed")
	}
	if dayNumber != b.CurrentDay {
		return util.NewBadRequest(fmt.Sprintf("You must complete Day %d first", b.CurrentDay))
	}
	return nil
}

// LessonGeneration 课程生成前置检查，返回当前训练营状态
func (g *ProgressionGuard) LessonGeneration(ctx context.Context, userID, bootcampID string, dayNumber int) (*model.Bootcamp, error) {
	bootcamp, err := g.loadBootcamp(ctx, userID, bootcampID)
	if err != nil {
		return nil, err
	}

	if err := CheckLessonUnlocked(bootcamp, dayNumber); err != nil {
		return nil, err
	}

	exists, err := g.LessonRepo.ExistsForDay(ctx, bootcampID, dayNumber)
	if err != nil {
		return nil, util.NewPersistenceError("Failed to check existing lesson", err)
	}
	if exists {
		return nil, util.NewConflict(util.ErrLessonExists)
	}
	return bootcamp, nil
}

// ActivityGeneration 练习生成前置检查，返回所属课程
func (g *ProgressionGuard) ActivityGeneration(ctx context.Context, userID, lessonID string) (*model.Lesson, error) {
	lesson, err := g.LessonRepo.FindByID(ctx, userID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound(util.ErrLessonNotFound)
		}
		return nil, util.NewPersistenceError("Failed to load lesson", err)
	}

	count, err := g.ActivityRepo.CountByLesson(ctx, lessonID)
	if err != nil {
		return nil, util.NewPersistenceError("Failed to check existing activities", err)
	}
	if count > 0 {
		return nil, util.NewConflict(util.ErrActivitiesExist)
	}
	return lesson, nil
}

// CompleteDay 条件更新 current_day，返回新的 current_day。
// 检查与更新之间若被并发修改，按最新状态重新给出错误
func (g *ProgressionGuard) CompleteDay(ctx context.Context, userID, bootcampID string, dayNumber int) (int, error) {
	bootcamp, err := g.loadBootcamp(ctx, userID, bootcampID)
	if err != nil {
		return 0, err
	}
	if err := CheckCompletable(bootcamp, dayNumber); err != nil {
		return 0, err
	}

	advanced, err := g.BootcampRepo.AdvanceDay(ctx, userID, bootcampID, dayNumber)
	if err != nil {
		return 0, util.NewPersistenceError("Failed to update bootcamp progress", err)
	}
	if !advanced {
		fresh, err := g.loadBootcamp(ctx, userID, bootcampID)
		if err != nil {
			return 0, err
		}
		if err := CheckCompletable(fresh, dayNumber); err != nil {
			return 0, err
		}
		return 0, util.NewBadRequest(fmt.Sprintf("You must complete Day %d first", fresh.CurrentDay))
	}
	return dayNumber + 1, nil
}

func (g *ProgressionGuard) loadBootcamp(ctx context.Context, userID, bootcampID string) (*model.Bootcamp, error) {
	bootcamp, err := g.BootcampRepo.FindByID(ctx, userID, bootcampID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound(util.ErrBootcampNotFound)
		}
		return nil, util.NewPersistenceError("Failed to load bootcamp", err)
	}
	return bootcamp, nil
}
