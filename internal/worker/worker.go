// Package worker runs a channel's long-lived consumer loop. Each instance
// drains its channel queue into a small pool of goroutines; scaling out is
// done by adding instances, the fabric distributes messages across them.
package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
)

//go:generate mockgen -source=worker.go -destination=../mocks/worker/mock.go -package=mocks

type messageConsumer interface {
	Consume(ctx context.Context, out chan<- queue.Message, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.Message, strategy retry.Strategy)
}

// Worker consumes one channel queue and hands messages to the delivery
// handler.
type Worker struct {
	channel  string
	consumer messageConsumer
	handler  messageHandler
}

// New creates a worker for the named channel.
func New(channel string, consumer messageConsumer, handler messageHandler) *Worker {
	return &Worker{
		channel:  channel,
		consumer: consumer,
		handler:  handler,
	}
}

// Run consumes messages until the context is cancelled. In-flight messages
// are allowed to finish before Run returns; nothing is silently dropped.
func (w *Worker) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.Message, workerCount)

	go func() {
		if err := w.consumer.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("channel", w.channel).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("%s worker-%d started", w.channel, id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("%s worker-%d shutting down", w.channel, id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("%s worker-%d channel closed, shutting down", w.channel, id)
						return
					}

					w.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Printf("%s worker stopped", w.channel)
}
