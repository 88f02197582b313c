package controller

import (
	"mimir_backend/internal/model"
	"mimir_backend/internal/service"
)

// 以下结构只用于接口文档，响应体由 util.Success 组装

type SyllabusResponse struct {
	Success  bool           `json:"success"`
	Syllabus model.Syllabus `json:"syllabus"`
	Goal     string         `json:"goal"`
	Duration int            `json:"duration"`
}

type LessonSummaryResponse struct {
	Success bool                  `json:"success"`
	Lesson  service.LessonSummary `json:"lesson"`
}

type LessonResponse struct {
	Success bool               `json:"success"`
	Lesson  service.LessonView `json:"lesson"`
}

type ActivitiesResponse struct {
	Success    bool             `json:"success"`
	Activities []model.Activity `json:"activities"`
	Count      int              `json:"count"`
}

type ActivityResponse struct {
	Success  bool           `json:"success"`
	Activity model.Activity `json:"activity"`
}

type CompleteDayResponse struct {
	Success  bool                      `json:"success"`
	Bootcamp service.CompleteDayResult `json:"bootcamp"`
}

type BootcampResponse struct {
	Success  bool           `json:"success"`
	Bootcamp model.Bootcamp `json:"bootcamp"`
}

type BootcampListResponse struct {
	Success   bool             `json:"success"`
	Bootcamps []model.Bootcamp `json:"bootcamps"`
	Count     int              `json:"count"`
}

type BootcampDetailResponse struct {
	Success  bool                   `json:"success"`
	Bootcamp service.BootcampDetail `json:"bootcamp"`
}
