package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rmatch-app/rmatch-backend/internal/models"
)

// Publisher pushes stored messages onto per-receiver Redis channels. The
// socket gateway that fans them out to connected clients subscribes on the
// other side; delivery beyond the publish is not this process's concern.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(addr, password string) *Publisher {
	return &Publisher{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// PublishMessage serializes the message and publishes it to the receiver's
// channel.
func (p *Publisher) PublishMessage(ctx context.Context, msg models.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	channel := fmt.Sprintf("messages:%d", msg.ReceiverID)
	return p.client.Publish(ctx, channel, payload).Err()
}

// Close releases the underlying connection pool.
func (p *Publisher) Close() error {
	return p.client.Close()
}
