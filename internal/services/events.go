package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/honeynil/sportteams-service/internal/infrastructure/kafka"
)

// publishEvent marshals and sends a domain event off the request path.
// Delivery is best effort with a short retry ladder; a lost event only
// delays cache invalidation, it never fails the request.
func publishEvent(producer kafka.KafkaProducer, topic string, key int64, event map[string]interface{}) {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal event", "topic", topic, "error", err)
		return
	}
	go func() {
		retries := 3
		for i := 0; i < retries; i++ {
			if err := producer.Send(context.Background(), topic, key, eventBytes); err == nil {
				return
			}
			time.Sleep(time.Second * time.Duration(i+1))
		}
		slog.Error("failed to send event after retries", "topic", topic, "key", key)
	}()
}
