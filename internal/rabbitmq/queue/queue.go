// Package queue owns the RabbitMQ topology of the dispatcher: one direct
// exchange, a durable queue per channel, tiered TTL retry queues that
// dead-letter back into their channel queue, and the failed queue consumed
// by the dead-letter handler.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
)

const (
	ExchangeName    = "notifications.direct"
	FailedQueueName = "failed.queue"

	failedRoutingKey = "failed"
	contentType      = "application/json"
)

// Message is the channel-bound wire entity published at intake and consumed
// by channel workers. It carries every request field plus the accumulated
// retry count.
type Message struct {
	NotificationID uuid.UUID         `json:"notification_id"`
	UserID         uuid.UUID         `json:"user_id"`
	Channel        model.Channel     `json:"channel"`
	Email          string            `json:"email,omitempty"`
	PushToken      string            `json:"push_token,omitempty"`
	TemplateCode   string            `json:"template_code"`
	Variables      map[string]string `json:"variables"`
	RequestID      string            `json:"request_id"`
	Priority       int               `json:"priority"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	RetryCount     int               `json:"retry_count"`
}

// Recipient returns the channel-appropriate delivery address.
func (m Message) Recipient() string {
	if m.Channel == model.ChannelPush {
		return m.PushToken
	}
	return m.Email
}

// FailedMessage is the dead-letter wire entity: the original message plus
// the terminal error and where it came from.
type FailedMessage struct {
	Message
	Error         string              `json:"error"`
	ErrorCategory model.ErrorCategory `json:"error_category"`
	OriginalQueue string              `json:"original_queue"`
	FailedAt      time.Time           `json:"failed_at"`
}

// RetryDelay returns the backoff delay before retry attempt n (1-based):
// base * 2^(n-1).
func RetryDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		return base
	}
	return base << (attempt - 1)
}

func retryQueueName(ch model.Channel, attempt int) string {
	return fmt.Sprintf("%s.retry.%d", ch.QueueName(), attempt)
}

func retryRoutingKey(ch model.Channel, attempt int) string {
	return fmt.Sprintf("%s.retry.%d", ch, attempt)
}

// Declare sets up the full dispatcher topology on the given channel. Every
// binary declares it on startup; declarations are idempotent.
func Declare(ch *rabbitmq.Channel, maxRetries int, baseDelay time.Duration) error {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	if _, err := qm.DeclareQueue(FailedQueueName, rabbitmq.QueueConfig{Durable: true}); err != nil {
		return fmt.Errorf("failed to declare failed queue: %w", err)
	}

	if err := ch.QueueBind(FailedQueueName, failedRoutingKey, exchange.Name(), false, nil); err != nil {
		return fmt.Errorf("failed to bind failed queue: %w", err)
	}

	for _, c := range model.Channels {
		mainQ, err := qm.DeclareQueue(c.QueueName(), rabbitmq.QueueConfig{Durable: true})
		if err != nil {
			return fmt.Errorf("failed to declare %s queue: %w", c, err)
		}

		if err := ch.QueueBind(mainQ.Name, string(c), exchange.Name(), false, nil); err != nil {
			return fmt.Errorf("failed to bind %s queue: %w", c, err)
		}

		// One retry queue per backoff tier. Messages expire after the tier
		// delay and dead-letter back into the channel queue via the default
		// exchange, so retries survive worker restarts.
		for n := 1; n < maxRetries; n++ {
			args := map[string]interface{}{
				"x-dead-letter-exchange":    "",
				"x-dead-letter-routing-key": c.QueueName(),
				"x-message-ttl":             int32(RetryDelay(baseDelay, n).Milliseconds()),
			}

			retryQ, err := qm.DeclareQueue(retryQueueName(c, n), rabbitmq.QueueConfig{
				Durable: true,
				Args:    args,
			})
			if err != nil {
				return fmt.Errorf("failed to declare retry queue %s: %w", retryQueueName(c, n), err)
			}

			if err := ch.QueueBind(retryQ.Name, retryRoutingKey(c, n), exchange.Name(), false, nil); err != nil {
				return fmt.Errorf("failed to bind retry queue %s: %w", retryQ.Name, err)
			}
		}
	}

	return nil
}

// Publisher routes dispatcher messages through the notifications exchange.
type Publisher struct {
	pub *rabbitmq.Publisher
}

func NewPublisher(ch *rabbitmq.Channel) *Publisher {
	return &Publisher{pub: rabbitmq.NewPublisher(ch, ExchangeName)}
}

// Publish routes a message to its channel queue.
func (p *Publisher) Publish(msg Message, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return p.pub.PublishWithRetry(body, string(msg.Channel), contentType, strategy)
}

// PublishRetry parks a message in the retry tier matching its retry count;
// the tier's TTL implements the exponential backoff delay.
func (p *Publisher) PublishRetry(msg Message, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal retry message: %w", err)
	}

	return p.pub.PublishWithRetry(body, retryRoutingKey(msg.Channel, msg.RetryCount), contentType, strategy)
}

// PublishFailed routes an exhausted message to the failed queue.
func (p *Publisher) PublishFailed(msg FailedMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal failed message: %w", err)
	}

	return p.pub.PublishWithRetry(body, failedRoutingKey, contentType, strategy)
}

// Consumer drains one queue of the dispatcher topology.
type Consumer struct {
	consumer *rabbitmq.Consumer
}

func NewConsumer(ch *rabbitmq.Channel, queueName string) *Consumer {
	return &Consumer{consumer: rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(queueName))}
}

// Consume decodes channel messages into out until the context is cancelled.
// Messages that do not decode are logged and dropped.
func (c *Consumer) Consume(ctx context.Context, out chan<- Message, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				var msg Message
				if err := json.Unmarshal(m, &msg); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
					continue
				}

				out <- msg
			}
		}
	}()

	return c.consumer.ConsumeWithRetry(msgChan, strategy)
}

// ConsumeFailed decodes dead-letter messages into out until the context is
// cancelled. Undecodable payloads are rejected after logging, never retried.
func (c *Consumer) ConsumeFailed(ctx context.Context, out chan<- FailedMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				var msg FailedMessage
				if err := json.Unmarshal(m, &msg); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal failed message")
					continue
				}

				out <- msg
			}
		}
	}()

	return c.consumer.ConsumeWithRetry(msgChan, strategy)
}
