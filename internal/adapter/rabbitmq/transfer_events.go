package rabbitmq

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/simaogato/transferflow-backend/internal/usecase/transfer"
)

// DefaultExchange receives every transfer state transition
const DefaultExchange = "transfers.events"

// TransferEvent is the JSON payload published for a state transition
type TransferEvent struct {
	SessionID string    `json:"session_id"`
	Channel   string    `json:"channel"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	At        time.Time `json:"at"`
	Reference string    `json:"reference,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// NewTransferEvent converts a workflow transition into its published form
func NewTransferEvent(e transfer.Event) TransferEvent {
	event := TransferEvent{
		SessionID: e.SessionID.String(),
		Channel:   string(e.Channel),
		From:      string(e.From),
		To:        string(e.To),
		At:        e.At,
	}
	if e.Receipt != nil {
		event.Reference = e.Receipt.Reference
	}
	if e.Err != nil {
		event.Error = e.Err.Error()
	}
	return event
}

// RoutingKey returns "transfer.<state>" for the target state, lower case
func RoutingKey(e transfer.Event) string {
	return "transfer." + strings.ToLower(string(e.To))
}

// TransitionPublisher forwards workflow transitions to a Publisher
type TransitionPublisher struct {
	Publisher Publisher
	Exchange  string
	Timeout   time.Duration
	Logger    *slog.Logger
}

// NewTransitionPublisher creates a new TransitionPublisher instance
func NewTransitionPublisher(publisher Publisher, exchange string, logger *slog.Logger) *TransitionPublisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TransitionPublisher{
		Publisher: publisher,
		Exchange:  exchange,
		Timeout:   5 * time.Second,
		Logger:    logger,
	}
}

// Listen is a workflow listener. Publish failures are logged and never reach the workflow.
func (p *TransitionPublisher) Listen(e transfer.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), p.Timeout)
	defer cancel()

	routingKey := RoutingKey(e)
	if err := p.Publisher.Publish(ctx, p.Exchange, routingKey, NewTransferEvent(e)); err != nil {
		p.Logger.Warn("failed to publish transfer event",
			"session_id", e.SessionID.String(),
			"routing_key", routingKey,
			"error", err,
		)
	}
}
