package model

// ActivitiesPerLesson 每节课固定的练习数量
const ActivitiesPerLesson = 4

// swagger:model Activity
type Activity struct {
	UUIDBase
	LessonID   string `gorm:"type:varchar(36);not null;uniqueIndex:idx_activity_lesson_order" json:"lessonId"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	OrderIndex int    `gorm:"not null;uniqueIndex:idx_activity_lesson_order" json:"orderIndex"`
	Revealed   bool   `gorm:"default:false" json:"revealed"`
}

func (Activity) TableName() string {
	return "activities"
}
