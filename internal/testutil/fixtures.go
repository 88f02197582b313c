package testutil

import (
	"fmt"
	"mimir_backend/internal/model"
	"strings"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Syllabus 生成指定天数的合法大纲
func Syllabus(days int) model.Syllabus {
	s := model.Syllabus{Days: make([]model.SyllabusDay, 0, days)}
	for i := 1; i <= days; i++ {
		s.Days = append(s.Days, model.SyllabusDay{
			Day:         i,
			Title:       fmt.Sprintf("Day %d", i),
			Description: fmt.Sprintf("Part %d of the journey", i),
			Topics:      []string{"first topic", "second topic", "third topic"},
		})
	}
	return s
}

// SyllabusJSON 模型返回的大纲文本
func SyllabusJSON(days int) string {
	parts := make([]string, 0, days)
	for i := 1; i <= days; i++ {
		parts = append(parts, fmt.Sprintf(
			`{"day":%d,"title":"Day %d","description":"Part %d","topics":["first topic","second topic","third topic"]}`,
			i, i, i))
	}
	return `{"days":[` + strings.Join(parts, ",") + `]}`
}

// ActivitiesJSON 合法的4道练习
const ActivitiesJSON = `[
 {"question":"What does useState return?","answer":"The current state and a setter function."},
 {"question":"When does useEffect run?","answer":"After render, whenever a dependency changes."},
 {"question":"Why must hooks not be called conditionally?","answer":"React relies on a stable call order between renders."},
 {"question":"Write a useToggle hook.","answer":"Use useState(false) and return the value with a function that flips it."}
]`

// LessonMarkdown 足够长的课程正文
func LessonMarkdown(title string) string {
	return strings.TrimSpace("## " + title + "\n\n" + strings.Repeat("Hooks let function components hold state and run side effects. ", 8))
}

func SeedBootcamp(tb testing.TB, db *gorm.DB, userID string, duration, currentDay int) *model.Bootcamp {
	tb.Helper()
	b := &model.Bootcamp{
		UserID:       userID,
		Title:        "Master React Hooks",
		Goal:         "Master React Hooks",
		DurationDays: duration,
		CurrentDay:   currentDay,
		Syllabus:     datatypes.NewJSONType(Syllabus(duration)),
	}
	if err := db.Create(b).Error; err != nil {
		tb.Fatalf("seed bootcamp: %v", err)
	}
	return b
}

func SeedLesson(tb testing.TB, db *gorm.DB, bootcampID string, day int) *model.Lesson {
	tb.Helper()
	l := &model.Lesson{
		BootcampID: bootcampID,
		DayNumber:  day,
		Title:      fmt.Sprintf("Day %d", day),
		Content:    LessonMarkdown(fmt.Sprintf("Day %d", day)),
	}
	if err := db.Create(l).Error; err != nil {
		tb.Fatalf("seed lesson: %v", err)
	}
	return l
}
