package util

const (
	StorageNone  = "none"
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const ContextUserKey = "user"

// 生成内容类型，用于日志、指标与锁键
const (
	ContentSyllabus   = "syllabus"
	ContentLesson     = "lesson"
	ContentActivities = "activities"
)

const MimeMarkdown = "text/markdown; charset=utf-8"
