package service

import (
	"testing"

	"mimir_backend/internal/generator"
	"mimir_backend/internal/llm"
	"mimir_backend/internal/repository"
	"mimir_backend/internal/testutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fixture struct {
	db         *gorm.DB
	mock       *llm.MockProvider
	guard      *ProgressionGuard
	bootcamps  *BootcampService
	lessons    *LessonService
	activities *ActivityService
	userID     string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	mock := llm.NewMockProvider()
	gen := generator.New(mock, generator.WithPolicy(generator.Policy{MaxAttempts: 3}))

	bootcampRepo := repository.NewBootcampRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	guard := NewProgressionGuard(bootcampRepo, lessonRepo, activityRepo)
	lock := NewGenerationLock(nil, 0)
	storage := &StorageService{}

	return &fixture{
		db:         db,
		mock:       mock,
		guard:      guard,
		bootcamps:  NewBootcampService(bootcampRepo, lessonRepo, guard, gen, storage),
		lessons:    NewLessonService(lessonRepo, guard, gen, lock, storage),
		activities: NewActivityService(activityRepo, guard, gen, lock),
		userID:     uuid.New().String(),
	}
}
