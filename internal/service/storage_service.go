package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mimir_backend/internal/config"
	"mimir_backend/internal/model"
	"mimir_backend/internal/util"
	"mimir_backend/pkg/logger"
	"os"
	"path/filepath"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageProvider 定义通用存储接口
type StorageProvider interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// LocalStorageProvider 本地存储实现
type LocalStorageProvider struct {
	Root string
}

func (p *LocalStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return dst, nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(p.Root, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Bucket string
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Bucket: cfg.MinioBucket, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return "/" + p.Bucket + "/" + key, nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, key string) error {
	return p.Client.RemoveObject(ctx, p.Bucket, key, minio.RemoveObjectOptions{})
}

// OSSStorageProvider 阿里云OSS存储实现
type OSSStorageProvider struct {
	Endpoint string
	Bucket   *oss.Bucket
}

func NewOSSStorageProvider(cfg *config.StorageConfig) (*OSSStorageProvider, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}
	return &OSSStorageProvider{Endpoint: cfg.OSSEndpoint, Bucket: bucket}, nil
}

func (p *OSSStorageProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	if err := p.Bucket.PutObject(key, reader, oss.ContentType(contentType)); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://%s.%s/%s", p.Bucket.BucketName, p.Endpoint, key), nil
}

func (p *OSSStorageProvider) Delete(ctx context.Context, key string) error {
	return p.Bucket.DeleteObject(key)
}

// StorageService 课程正文归档，失败只记录日志。Provider 为 nil 时不归档
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.StorageConfig) (*StorageService, error) {
	var provider StorageProvider
	var err error
	switch cfg.Type {
	case util.StorageLocal:
		provider = &LocalStorageProvider{Root: cfg.LocalPath}
	case util.StorageMinio:
		provider, err = NewMinioStorageProvider(cfg)
	case util.StorageOSS:
		provider, err = NewOSSStorageProvider(cfg)
	case util.StorageNone, "":
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s storage: %w", cfg.Type, err)
	}
	return &StorageService{Provider: provider}, nil
}

// LessonKey 归档对象路径
func LessonKey(bootcampID string, dayNumber int) string {
	return fmt.Sprintf("lessons/%s/day-%d.md", bootcampID, dayNumber)
}

func (s *StorageService) ArchiveLesson(ctx context.Context, lesson *model.Lesson) {
	if s == nil || s.Provider == nil {
		return
	}

	key := LessonKey(lesson.BootcampID, lesson.DayNumber)
	body := []byte("# " + lesson.Title + "\n\n" + lesson.Content + "\n")
	location, err := s.Provider.Upload(ctx, key, bytes.NewReader(body), int64(len(body)), util.MimeMarkdown)
	if err != nil {
		logger.Log.Warn("Failed to archive lesson",
			zap.String("lesson_id", lesson.ID),
			zap.String("key", key),
			zap.Error(err))
		return
	}
	logger.Log.Debug("Lesson archived", zap.String("lesson_id", lesson.ID), zap.String("location", location))
}

// RemoveBootcampArchive 删除训练营下已归档的课程
func (s *StorageService) RemoveBootcampArchive(ctx context.Context, bootcampID string, days []int) {
	if s == nil || s.Provider == nil {
		return
	}
	for _, day := range days {
		key := LessonKey(bootcampID, day)
		if err := s.Provider.Delete(ctx, key); err != nil {
			logger.Log.Warn("Failed to remove archived lesson",
				zap.String("bootcamp_id", bootcampID),
				zap.String("key", key),
				zap.Error(err))
		}
	}
}
