package redis

import (
	"engagement-srv/internal/demo/repository"
	"engagement-srv/pkg/log"
	pkgRedis "engagement-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.RedisRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
