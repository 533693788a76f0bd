package events

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

const (
	TypeAccountSanctioned = "account.sanctioned"
	TypeAccountDeleted    = "account.deleted"
	TypeAdminCreated      = "admin.created"
)

// Event is a fact about a committed console action.
type Event struct {
	Type       string                 `json:"type"`
	AccountID  string                 `json:"account_id"`
	ActorID    string                 `json:"actor_id,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher fans events out to other services. Publishing happens after the
// database commit and never undoes it.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// PublishQuietly publishes and logs failures instead of returning them.
func PublishQuietly(ctx context.Context, p Publisher, log *zap.Logger, e Event) {
	if p == nil {
		return
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	if err := p.Publish(ctx, e); err != nil {
		log.Warn("publish event failed",
			zap.String("type", e.Type),
			zap.String("account_id", e.AccountID),
			zap.Error(err))
	}
}

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct {
	log *zap.Logger
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(_ context.Context, e Event) error {
	p.log.Info("domain event",
		zap.String("type", e.Type),
		zap.String("account_id", e.AccountID),
		zap.String("actor_id", e.ActorID),
		zap.Any("data", e.Data))
	return nil
}
