package adapter

import (
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(addr string) redis.UniversalClient {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
}
