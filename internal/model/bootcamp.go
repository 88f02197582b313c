package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	BootcampTitleMaxLen = 60
	BootcampGoalMaxLen  = 200
	MinDurationDays     = 7
	MaxDurationDays     = 90
)

// BootcampStatus 由 current_day 与 duration_days 推导，不落库
type BootcampStatus string

const (
	BootcampInProgress BootcampStatus = "in_progress"
	BootcampCompleted  BootcampStatus = "completed"
)

// SyllabusDay 大纲中的一天
// swagger:model SyllabusDay
type SyllabusDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

// Syllabus 训练营大纲，整体以JSON形式存放在 bootcamps.syllabus
// swagger:model Syllabus
type Syllabus struct {
	Days []SyllabusDay `json:"days"`
}

// Day 查找指定天的大纲条目
func (s Syllabus) Day(n int) (SyllabusDay, bool) {
	for _, d := range s.Days {
		if d.Day == n {
			return d, true
		}
	}
	return SyllabusDay{}, false
}

// swagger:model Bootcamp
type Bootcamp struct {
	UUIDBase
	UserID       string                       `gorm:"index;type:varchar(36);not null" json:"userId"`
	Title        string                       `gorm:"size:60;not null" json:"title"`
	Goal         string                       `gorm:"size:200;not null" json:"goal"`
	DurationDays int                          `gorm:"not null" json:"durationDays"`
	CurrentDay   int                          `gorm:"not null;default:1" json:"currentDay"`
	Syllabus     datatypes.JSONType[Syllabus] `json:"syllabus"`
	UpdatedAt    time.Time                    `json:"updatedAt"`
}

func (Bootcamp) TableName() string {
	return "bootcamps"
}

// Status current_day 超过总天数即视为已完成
func (b *Bootcamp) Status() BootcampStatus {
	if b.CurrentDay > b.DurationDays {
		return BootcampCompleted
	}
	return BootcampInProgress
}

// CompletedDays 已完成天数
func (b *Bootcamp) CompletedDays() int {
	done := b.CurrentDay - 1
	if done > b.DurationDays {
		return b.DurationDays
	}
	return done
}
