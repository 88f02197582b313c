package service

import (
	"context"
	"errors"
	"math"
	"mimir_backend/internal/generator"
	"mimir_backend/internal/model"
	"mimir_backend/internal/repository"
	"mimir_backend/internal/util"
	"mimir_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BootcampService struct {
	BootcampRepo *repository.BootcampRepository
	LessonRepo   *repository.LessonRepository
	Guard        *ProgressionGuard
	Generator    *generator.Generator
	Storage      *StorageService
}

func NewBootcampService(
	bootcampRepo *repository.BootcampRepository,
	lessonRepo *repository.LessonRepository,
	guard *ProgressionGuard,
	gen *generator.Generator,
	storage *StorageService,
) *BootcampService {
	return &BootcampService{
		BootcampRepo: bootcampRepo,
		LessonRepo:   lessonRepo,
		Guard:        guard,
		Generator:    gen,
		Storage:      storage,
	}
}

// GenerateSyllabusRequest 生成大纲请求
type GenerateSyllabusRequest struct {
	Goal     string `json:"goal" binding:"required,notblank,max=200"`
	Duration int    `json:"duration" binding:"required,min=7,max=90"`
}

// CreateBootcampRequest 创建训练营，未提供大纲时自动生成
type CreateBootcampRequest struct {
	Goal     string          `json:"goal" binding:"required,notblank,max=200"`
	Duration int             `json:"duration" binding:"required,min=7,max=90"`
	Title    string          `json:"title" binding:"max=60"`
	Syllabus *model.Syllabus `json:"syllabus"`
}

type CompleteDayRequest struct {
	DayNumber int `json:"dayNumber" binding:"required,min=1"`
}

// CompleteDayResult 完成某天后的状态
type CompleteDayResult struct {
	ID           string `json:"id"`
	CurrentDay   int    `json:"currentDay"`
	CompletedDay int    `json:"completedDay"`
}

// Progress 训练营进度
type Progress struct {
	CompletedDays int                  `json:"completedDays"`
	TotalDays     int                  `json:"totalDays"`
	Percentage    int                  `json:"percentage"`
	Status        model.BootcampStatus `json:"status"`
}

// BootcampDetail 训练营详情
type BootcampDetail struct {
	model.Bootcamp
	LessonDays []int    `json:"lessonDays"`
	Progress   Progress `json:"progress"`
}

// GenerateSyllabus 只生成不保存
func (s *BootcampService) GenerateSyllabus(ctx context.Context, req GenerateSyllabusRequest) (*model.Syllabus, error) {
	logger.Log.Info("Generating syllabus",
		zap.String("goal", req.Goal),
		zap.Int("duration", req.Duration))

	syllabus, err := s.Generator.GenerateSyllabus(ctx, req.Goal, req.Duration)
	if err != nil {
		return nil, generationFailure("Failed to generate valid syllabus after multiple attempts", err)
	}
	return syllabus, nil
}

func (s *BootcampService) Create(ctx context.Context, userID string, req CreateBootcampRequest) (*model.Bootcamp, error) {
	var syllabus *model.Syllabus
	if req.Syllabus != nil {
		if err := generator.ValidateSyllabus(*req.Syllabus); err != nil {
			var schemaErr *generator.SchemaError
			if errors.As(err, &schemaErr) {
				issues := make([]util.FieldIssue, 0, len(schemaErr.Issues))
				for _, is := range schemaErr.Issues {
					issues = append(issues, util.FieldIssue{Field: "syllabus" + is.Path, Message: is.Message})
				}
				return nil, util.NewValidationError(issues)
			}
			return nil, util.NewValidationError([]util.FieldIssue{{Field: "syllabus", Message: err.Error()}})
		}
		syllabus = req.Syllabus
	} else {
		generated, err := s.GenerateSyllabus(ctx, GenerateSyllabusRequest{Goal: req.Goal, Duration: req.Duration})
		if err != nil {
			return nil, err
		}
		syllabus = generated
	}

	title := req.Title
	if title == "" {
		title = util.TruncateRunes(req.Goal, model.BootcampTitleMaxLen)
	}

	bootcamp := &model.Bootcamp{
		UserID:       userID,
		Title:        title,
		Goal:         req.Goal,
		DurationDays: req.Duration,
		CurrentDay:   1,
		Syllabus:     datatypes.NewJSONType(*syllabus),
	}
	if err := s.BootcampRepo.Create(ctx, bootcamp); err != nil {
		return nil, util.NewPersistenceError("Failed to save bootcamp", err)
	}

	logger.Log.Info("Bootcamp created",
		zap.String("bootcamp_id", bootcamp.ID),
		zap.Int("duration", bootcamp.DurationDays))
	return bootcamp, nil
}

func (s *BootcampService) List(ctx context.Context, userID string) ([]model.Bootcamp, error) {
	bootcamps, err := s.BootcampRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, util.NewPersistenceError("Failed to fetch bootcamps", err)
	}
	return bootcamps, nil
}

func (s *BootcampService) Detail(ctx context.Context, userID, id string) (*BootcampDetail, error) {
	bootcamp, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	days, err := s.LessonRepo.ListDays(ctx, id)
	if err != nil {
		return nil, util.NewPersistenceError("Failed to fetch lessons", err)
	}
	if days == nil {
		days = []int{}
	}

	return &BootcampDetail{
		Bootcamp:   *bootcamp,
		LessonDays: days,
		Progress:   progressOf(bootcamp),
	}, nil
}

// Delete 级联删除后尽力清理归档
func (s *BootcampService) Delete(ctx context.Context, userID, id string) error {
	days, err := s.LessonRepo.ListDays(ctx, id)
	if err != nil {
		return util.NewPersistenceError("Failed to fetch lessons", err)
	}

	if err := s.BootcampRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NewNotFound(util.ErrBootcampNotFound)
		}
		return util.NewPersistenceError("Failed to delete bootcamp", err)
	}

	logger.Log.Info("Bootcamp deleted", zap.String("bootcamp_id", id), zap.Int("lessons", len(days)))
	s.Storage.RemoveBootcampArchive(ctx, id, days)
	return nil
}

func (s *BootcampService) CompleteDay(ctx context.Context, userID, id string, dayNumber int) (*CompleteDayResult, error) {
	currentDay, err := s.Guard.CompleteDay(ctx, userID, id, dayNumber)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Day completed",
		zap.String("bootcamp_id", id),
		zap.Int("day", dayNumber),
		zap.Int("current_day", currentDay))

	return &CompleteDayResult{
		ID:           id,
		CurrentDay:   currentDay,
		CompletedDay: dayNumber,
	}, nil
}

func (s *BootcampService) find(ctx context.Context, userID, id string) (*model.Bootcamp, error) {
	bootcamp, err := s.BootcampRepo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFound(util.ErrBootcampNotFound)
		}
		return nil, util.NewPersistenceError("Failed to fetch bootcamp", err)
	}
	return bootcamp, nil
}

func progressOf(b *model.Bootcamp) Progress {
	completed := b.CompletedDays()
	pct := 0
	if b.DurationDays > 0 {
		pct = int(math.Round(float64(completed) / float64(b.DurationDays) * 100))
	}
	return Progress{
		CompletedDays: completed,
		TotalDays:     b.DurationDays,
		Percentage:    pct,
		Status:        b.Status(),
	}
}
