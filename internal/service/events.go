package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Skotchmaster/shopping_cart/internal/logging"
)

const (
	ProductTopic = "product_events"
	CartTopic    = "cart_events"

	publishTimeout = 5 * time.Second
)

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type NopPublisher struct{}

func (NopPublisher) PublishEvent(context.Context, string, string, any) error { return nil }

func publish(ctx context.Context, p Publisher, topic string, id uint, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, fmt.Sprint(id), event); err != nil {
		logging.FromContext(ctx).Error("publish_event_failed",
			slog.String("topic", topic),
			slog.Any("type", event["type"]),
			slog.Any("error", err),
		)
	}
}
