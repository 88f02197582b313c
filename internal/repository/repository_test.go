package repository

import (
	"context"
	"testing"
	"time"

	"mimir_backend/internal/model"
	"mimir_backend/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBootcampRepositoryScopesByUser(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBootcampRepository(db)
	ctx := context.Background()

	owner := uuid.New().String()
	b := testutil.SeedBootcamp(t, db, owner, 7, 1)

	got, err := repo.FindByID(ctx, owner, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Len(t, got.Syllabus.Data().Days, 7)

	_, err = repo.FindByID(ctx, uuid.New().String(), b.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBootcampRepositoryListNewestFirst(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBootcampRepository(db)
	owner := uuid.New().String()

	first := testutil.SeedBootcamp(t, db, owner, 7, 1)
	second := testutil.SeedBootcamp(t, db, owner, 14, 1)
	require.NoError(t, db.Model(first).Update("created_at", second.CreatedAt.Add(-time.Second)).Error)
	testutil.SeedBootcamp(t, db, uuid.New().String(), 7, 1)

	list, err := repo.ListByUser(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
}

func TestAdvanceDayIsConditional(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBootcampRepository(db)
	ctx := context.Background()
	owner := uuid.New().String()
	b := testutil.SeedBootcamp(t, db, owner, 7, 1)

	ok, err := repo.AdvanceDay(ctx, owner, b.ID, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	// 过期的 expectedDay 不会再次推进
	ok, err = repo.AdvanceDay(ctx, owner, b.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindByID(ctx, owner, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentDay)
}

func TestAdvanceDayStopsAfterLastDay(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBootcampRepository(db)
	ctx := context.Background()
	owner := uuid.New().String()
	b := testutil.SeedBootcamp(t, db, owner, 7, 8)

	ok, err := repo.AdvanceDay(ctx, owner, b.ID, 8)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLessonUniquePerDay(t *testing.T) {
	db := testutil.DB(t)
	repo := NewLessonRepository(db)
	ctx := context.Background()
	b := testutil.SeedBootcamp(t, db, uuid.New().String(), 7, 1)

	require.NoError(t, repo.Create(ctx, &model.Lesson{BootcampID: b.ID, DayNumber: 1, Title: "a", Content: "x"}))
	err := repo.Create(ctx, &model.Lesson{BootcampID: b.ID, DayNumber: 1, Title: "b", Content: "y"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	exists, err := repo.ExistsForDay(ctx, b.ID, 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLessonLookupsAreOwnerScoped(t *testing.T) {
	db := testutil.DB(t)
	repo := NewLessonRepository(db)
	ctx := context.Background()
	owner := uuid.New().String()
	b := testutil.SeedBootcamp(t, db, owner, 7, 3)
	l := testutil.SeedLesson(t, db, b.ID, 2)
	testutil.SeedLesson(t, db, b.ID, 1)

	got, err := repo.FindByDay(ctx, owner, b.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, l.ID, got.ID)

	_, err = repo.FindByDay(ctx, uuid.New().String(), b.ID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindByID(ctx, uuid.New().String(), l.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	days, err := repo.ListDays(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, days)
}

func activitySet(lessonID string, n int) []model.Activity {
	out := make([]model.Activity, n)
	for i := range out {
		out[i] = model.Activity{LessonID: lessonID, Question: "q", Answer: "a", OrderIndex: i}
	}
	return out
}

func TestActivityBatchIsAllOrNothing(t *testing.T) {
	db := testutil.DB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()
	owner := uuid.New().String()
	b := testutil.SeedBootcamp(t, db, owner, 7, 1)
	l := testutil.SeedLesson(t, db, b.ID, 1)

	// 重复的 order_index 触发唯一索引，整批回滚
	broken := activitySet(l.ID, 4)
	broken[3].OrderIndex = 0
	err := repo.CreateBatch(ctx, l.ID, broken)
	require.Error(t, err)

	count, err := repo.CountByLesson(ctx, l.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.CreateBatch(ctx, l.ID, activitySet(l.ID, 4)))
	err = repo.CreateBatch(ctx, l.ID, activitySet(l.ID, 4))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	list, err := repo.ListByLesson(ctx, owner, l.ID)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i, a := range list {
		assert.Equal(t, i, a.OrderIndex)
	}

	foreign, err := repo.ListByLesson(ctx, uuid.New().String(), l.ID)
	require.NoError(t, err)
	assert.Empty(t, foreign)
}

func TestBootcampDeleteCascades(t *testing.T) {
	db := testutil.DB(t)
	repo := NewBootcampRepository(db)
	activities := NewActivityRepository(db)
	ctx := context.Background()
	owner := uuid.New().String()

	b := testutil.SeedBootcamp(t, db, owner, 7, 2)
	l1 := testutil.SeedLesson(t, db, b.ID, 1)
	testutil.SeedLesson(t, db, b.ID, 2)
	require.NoError(t, activities.CreateBatch(ctx, l1.ID, activitySet(l1.ID, 4)))

	other := testutil.SeedBootcamp(t, db, owner, 7, 1)
	ol := testutil.SeedLesson(t, db, other.ID, 1)
	require.NoError(t, activities.CreateBatch(ctx, ol.ID, activitySet(ol.ID, 4)))

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New().String(), b.ID), gorm.ErrRecordNotFound)
	require.NoError(t, repo.Delete(ctx, owner, b.ID))

	var n int64
	require.NoError(t, db.Model(&model.Lesson{}).Where("bootcamp_id = ?", b.ID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&model.Activity{}).Where("lesson_id = ?", l1.ID).Count(&n).Error)
	assert.Zero(t, n)

	// 其他训练营不受影响
	require.NoError(t, db.Model(&model.Activity{}).Where("lesson_id = ?", ol.ID).Count(&n).Error)
	assert.EqualValues(t, 4, n)
}

func TestSetRevealed(t *testing.T) {
	db := testutil.DB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()
	owner := uuid.New().String()
	b := testutil.SeedBootcamp(t, db, owner, 7, 1)
	l := testutil.SeedLesson(t, db, b.ID, 1)
	require.NoError(t, repo.CreateBatch(ctx, l.ID, activitySet(l.ID, 4)))

	list, err := repo.ListByLesson(ctx, owner, l.ID)
	require.NoError(t, err)
	require.NoError(t, repo.SetRevealed(ctx, list[2].ID, true))

	got, err := repo.FindByID(ctx, owner, list[2].ID)
	require.NoError(t, err)
	assert.True(t, got.Revealed)

	_, err = repo.FindByID(ctx, uuid.New().String(), list[2].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
