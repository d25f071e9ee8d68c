package services

import (
	"context"
	"encoding/json"

	"conversationLogger/internal/enums"
	"conversationLogger/internal/models"
	redisModels "conversationLogger/internal/models/redis"

	"github.com/redis/go-redis/v9"
)

// LogPublisher fans newly stored logs out to live-tail subscribers.
type LogPublisher interface {
	Publish(ctx context.Context, log *models.ConversationLog) error
}

type RedisLogPublisher struct {
	redis   *redis.Client
	channel string
}

func NewRedisLogPublisher(redis *redis.Client, channel string) *RedisLogPublisher {
	return &RedisLogPublisher{
		redis:   redis,
		channel: channel,
	}
}

func (p *RedisLogPublisher) Publish(ctx context.Context, log *models.ConversationLog) error {
	message, err := json.Marshal(redisModels.RedisPublishedMessage{
		Event:   enums.EVENT_CONVERSATION_LOGGED,
		Payload: log,
	})
	if err != nil {
		return err
	}
	return p.redis.Publish(ctx, p.channel, message).Err()
}
