package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/honeynil/sportteams-service/internal/infrastructure/redis"
	"github.com/segmentio/kafka-go"
)

// Consumer follows the teams topic and drops cached team entries when a
// roster or team mutation event arrives, so readers never serve a roster
// that is older than the last published change.
type Consumer struct {
	reader      *kafka.Reader
	redisClient redis.RedisClient
}

func NewConsumer(brokers []string, topic, groupID string, redisClient redis.RedisClient) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 10e3,
			MaxBytes: 10e6,
		}),
		redisClient: redisClient,
	}
}

func (c *Consumer) Consume(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			slog.Error("failed to read Kafka message", "topic", c.reader.Config().Topic, "error", err)
			continue
		}

		slog.Info("Kafka message received", "topic", msg.Topic, "key", string(msg.Key), "value", string(msg.Value))

		var event struct {
			EventType string `json:"event_type"`
			TeamID    int32  `json:"team_id"`
		}
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			slog.Error("failed to unmarshal team event", "error", err)
			continue
		}

		switch event.EventType {
		case "team_created", "team_updated", "player_joined_team", "player_left_team":
			key := fmt.Sprintf("team:%d", event.TeamID)
			if err := c.redisClient.Del(ctx, key); err != nil {
				slog.Error("failed to invalidate team cache", "team_id", event.TeamID, "error", err)
				continue
			}
			slog.Info("team cache invalidated", "team_id", event.TeamID, "event_type", event.EventType)
		case "match_scheduled":
			// Matches are not cached; nothing to invalidate.
		default:
			slog.Error("unknown team event type", "event_type", event.EventType)
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
