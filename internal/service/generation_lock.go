package service

import (
	"context"
	"fmt"
	"mimir_backend/internal/util"
	"mimir_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// 只删除自己持有的锁
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// GenerationLock 基于 Redis SETNX 的生成中标记，避免并发请求为同一槽位重复调用大模型。
// Client 为 nil 时不加锁
type GenerationLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewGenerationLock(client *redis.Client, ttl time.Duration) *GenerationLock {
	return &GenerationLock{Client: client, TTL: ttl}
}

func LessonLockKey(bootcampID string, dayNumber int) string {
	return fmt.Sprintf("mimir:gen:lesson:%s:%d", bootcampID, dayNumber)
}

func ActivitiesLockKey(lessonID string) string {
	return fmt.Sprintf("mimir:gen:activities:%s", lessonID)
}

// Acquire 获取锁，已被持有时返回 Conflict。
// Redis 不可用时记录警告并放行，唯一索引仍然兜底
func (l *GenerationLock) Acquire(ctx context.Context, key string) (release func(), err error) {
	noop := func() {}
	if l == nil || l.Client == nil {
		return noop, nil
	}

	token := uuid.New().String()
	ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
	if err != nil {
		logger.Log.Warn("Generation lock unavailable, continuing without lock",
			zap.String("key", key),
			zap.Error(err))
		return noop, nil
	}
	if !ok {
		return nil, util.NewConflict(util.ErrGenerationInProgress)
	}

	return func() {
		// 请求上下文可能已取消，释放使用独立超时
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.Client, []string{key}, token).Err(); err != nil {
			logger.Log.Warn("Failed to release generation lock",
				zap.String("key", key),
				zap.Error(err))
		}
	}, nil
}
