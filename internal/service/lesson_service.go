package service

import (
	"context"
	"errors"
	"mimir_backend/internal/generator"
	"mimir_backend/internal/model"
	"mimir_backend/internal/repository"
	"mimir_backend/internal/util"
	"mimir_backend/pkg/logger"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	Guard      *ProgressionGuard
	Generator  *generator.Generator
	Lock       *GenerationLock
	Storage    *StorageService
}

func NewLessonService(
	lessonRepo *repository.LessonRepository,
	guard *ProgressionGuard,
	gen *generator.Generator,
	lock *GenerationLock,
	storage *StorageService,
) *LessonService {
	return &LessonService{
		LessonRepo: lessonRepo,
		Guard:      guard,
		Generator:  gen,
		Lock:       lock,
		Storage:    storage,
	}
}

// GenerateLessonRequest 生成课程请求
type GenerateLessonRequest struct {
	BootcampID string   `json:"bootcampId" binding:"required,uuid"`
	DayNumber  int      `json:"dayNumber" binding:"required,min=1"`
	DayTitle   string   `json:"dayTitle" binding:"required,notblank,max=255"`
	Topics     []string `json:"topics" binding:"required,min=1,dive,notblank"`
	Goal       string   `json:"goal" binding:"required,notblank"`
}

// GetLessonQuery 查询课程参数
type GetLessonQuery struct {
	BootcampID string `form:"bootcampId" binding:"required,uuid"`
	DayNumber  int    `form:"dayNumber" binding:"required,min=1"`
}

// LessonSummary 生成成功后的摘要
type LessonSummary struct {
	ID            string `json:"id"`
	DayNumber     int    `json:"dayNumber"`
	Title         string `json:"title"`
	ContentLength int    `json:"contentLength"`
}

// LessonView 课程详情，附带预计阅读时长
type LessonView struct {
	model.Lesson
	ReadingMinutes int `json:"readingMinutes"`
}

// Generate 检查解锁状态后生成并保存课程
func (s *LessonService) Generate(ctx context.Context, userID string, req GenerateLessonRequest) (*LessonSummary, error) {
	if _, err := s.Guard.LessonGeneration(ctx, userID, req.BootcampID, req.DayNumber); err != nil {
		return nil, err
	}

	release, err := s.Lock.Acquire(ctx, LessonLockKey(req.BootcampID, req.DayNumber))
	if err != nil {
		return nil, err
	}
	defer release()

	logger.Log.Info("Generating lesson",
		zap.String("bootcamp_id", req.BootcampID),
		zap.Int("day", req.DayNumber),
		zap.String("title", req.DayTitle))

	content, err := s.Generator.GenerateLesson(ctx, req.Goal, req.DayNumber, req.DayTitle, req.Topics)
	if err != nil {
		return nil, generationFailure("Failed to generate lesson", err)
	}

	lesson := &model.Lesson{
		BootcampID: req.BootcampID,
		DayNumber:  req.DayNumber,
		Title:      req.DayTitle,
		Content:    content,
	}
	if err := s.LessonRepo.Create(ctx, lesson); err != nil {
		if isDuplicate(err) {
			return nil, util.NewConflict(util.ErrLessonExists)
		}
		return nil, util.NewPersistenceError("Failed to save lesson to database", err)
	}

	contentLength := utf8.RuneCountInString(lesson.Content)
	logger.Log.Info("Lesson saved",
		zap.String("bootcamp_id", req.BootcampID),
		zap.Int("day", req.DayNumber),
		zap.String("lesson_id", lesson.ID),
		zap.Int("content_length", contentLength))

	s.Storage.ArchiveLesson(ctx, lesson)

	return &LessonSummary{
		ID:            lesson.ID,
		DayNumber:     lesson.DayNumber,
		Title:         lesson.Title,
		ContentLength: contentLength,
	}, nil
}

func (s *LessonService) Get(ctx context.Context, userID string, q GetLessonQuery) (*LessonView, error) {
	lesson, err := s.LessonRepo.FindByDay(ctx, userID, q.BootcampID, q.DayNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound(util.ErrLessonNotFound)
		}
		return nil, util.NewPersistenceError("Failed to fetch lesson", err)
	}
	return &LessonView{Lesson: *lesson, ReadingMinutes: lesson.ReadingMinutes()}, nil
}
