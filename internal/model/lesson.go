package model

import (
	"math"
	"strings"
)

// 阅读速度按每分钟200词估算
const wordsPerMinute = 200

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	BootcampID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_lesson_bootcamp_day" json:"bootcampId"`
	DayNumber  int    `gorm:"not null;uniqueIndex:idx_lesson_bootcamp_day" json:"dayNumber"`
	Title      string `gorm:"size:255;not null" json:"title"`
	Content    string `gorm:"type:text;not null" json:"content"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// ReadingMinutes 预计阅读时长（分钟）
func (l *Lesson) ReadingMinutes() int {
	words := len(strings.Fields(l.Content))
	return int(math.Ceil(float64(words) / wordsPerMinute))
}
