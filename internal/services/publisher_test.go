package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"conversationLogger/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLogPublisher_PublishesEnvelope(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	pubsub := client.Subscribe(ctx, "conversation_logs")
	defer pubsub.Close()
	_, err := pubsub.Receive(ctx)
	require.NoError(t, err)

	publisher := NewRedisLogPublisher(client, "conversation_logs")
	require.NoError(t, publisher.Publish(ctx, &models.ConversationLog{ID: 3, ConversationID: "c1", UserID: "u1", Message: "hi"}))

	select {
	case msg := <-pubsub.Channel():
		var envelope struct {
			Event   string                 `json:"event"`
			Payload models.ConversationLog `json:"payload"`
		}
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &envelope))
		assert.Equal(t, "conversation_logged", envelope.Event)
		assert.EqualValues(t, 3, envelope.Payload.ID)
		assert.Equal(t, "hi", envelope.Payload.Message)
	case <-time.After(2 * time.Second):
		t.Fatal("no message published")
	}
}

func TestRedisLogPublisher_UnreachableRedis(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	publisher := NewRedisLogPublisher(client, "conversation_logs")
	err := publisher.Publish(context.Background(), &models.ConversationLog{ID: 1, Message: "hi"})
	assert.Error(t, err)
}
