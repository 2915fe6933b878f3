package utils

import (
	"context"
	"log"
	"time"

	"planbuilder/config"

	"github.com/go-redis/redis/v8"
)

// DraftCacheClient is the dedicated client holding in-progress plan
// drafts.
var DraftCacheClient *redis.Client

// DraftKeyPrefix namespaces draft keys in Redis.
const DraftKeyPrefix = "plandraft:"

// DraftKey builds the Redis key for one draft.
func DraftKey(draftID string) string {
	return DraftKeyPrefix + draftID
}

// InitDraftCache initializes the Redis client for plan drafts.
func InitDraftCache() {
	DraftCacheClient = newClient(config.AppConfig.RedisDraftDB, "Draft Cache")
}

// GetDraftCacheClient returns the Redis client holding plan drafts.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		InitDraftCache()
	}
	return DraftCacheClient
}

func newClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}
