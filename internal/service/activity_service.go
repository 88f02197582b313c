package service

import (
	"context"
	"errors"
	"mimir_backend/internal/generator"
	"mimir_backend/internal/model"
	"mimir_backend/internal/repository"
	"mimir_backend/internal/util"
	"mimir_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	Guard        *ProgressionGuard
	Generator    *generator.Generator
	Lock         *GenerationLock
}

func NewActivityService(
	activityRepo *repository.ActivityRepository,
	guard *ProgressionGuard,
	gen *generator.Generator,
	lock *GenerationLock,
) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		Guard:        guard,
		Generator:    gen,
		Lock:         lock,
	}
}

type GenerateActivitiesRequest struct {
	LessonID string `json:"lessonId" binding:"required,uuid"`
}

type ListActivitiesQuery struct {
	LessonID string `form:"lessonId" binding:"required"`
}

type RevealActivityRequest struct {
	Revealed *bool `json:"revealed" binding:"required"`
}

// Generate 为课程生成4道练习，整组写入
func (s *ActivityService) Generate(ctx context.Context, userID, lessonID string) ([]model.Activity, error) {
	lesson, err := s.Guard.ActivityGeneration(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}

	release, err := s.Lock.Acquire(ctx, ActivitiesLockKey(lessonID))
	if err != nil {
		return nil, err
	}
	defer release()

	logger.Log.Info("Generating activities", zap.String("lesson_id", lessonID))

	drafts, err := s.Generator.GenerateActivities(ctx, lesson.Content)
	if err != nil {
		return nil, generationFailure("Failed to generate valid activities after multiple attempts", err)
	}

	activities := make([]model.Activity, len(drafts))
	for i, d := range drafts {
		activities[i] = model.Activity{
			LessonID:   lessonID,
			Question:   d.Question,
			Answer:     d.Answer,
			OrderIndex: i,
			Revealed:   false,
		}
	}

	if err := s.ActivityRepo.CreateBatch(ctx, lessonID, activities); err != nil {
		if isDuplicate(err) {
			return nil, util.NewConflict(util.ErrActivitiesExist)
		}
		return nil, util.NewPersistenceError("Failed to save activities to database", err)
	}

	logger.Log.Info("Activities saved", zap.String("lesson_id", lessonID), zap.Int("count", len(activities)))
	return activities, nil
}

// List 不存在或不属于当前用户的课程返回空列表
func (s *ActivityService) List(ctx context.Context, userID, lessonID string) ([]model.Activity, error) {
	activities, err := s.ActivityRepo.ListByLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, util.NewPersistenceError("Failed to fetch activities", err)
	}
	return activities, nil
}

func (s *ActivityService) Reveal(ctx context.Context, userID, activityID string, revealed bool) (*model.Activity, error) {
	activity, err := s.ActivityRepo.FindByID(ctx, userID, activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound(util.ErrActivityNotFound)
		}
		return nil, util.NewPersistenceError("Failed to load activity", err)
	}

	if err := s.ActivityRepo.SetRevealed(ctx, activityID, revealed); err != nil {
		return nil, util.NewPersistenceError("Failed to update activity", err)
	}
	activity.Revealed = revealed
	return activity, nil
}
