package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/notification-dispatcher/internal/mocks/worker"
	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
)

func TestWorker_Run_HandlesMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	consumerMock := mocks.NewMockmessageConsumer(ctrl)
	handlerMock := mocks.NewMockmessageHandler(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := queue.Message{
		NotificationID: uuid.New(),
		Channel:        model.ChannelEmail,
		Email:          "user@example.com",
	}

	handled := make(chan queue.Message, 1)

	consumerMock.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, out chan<- queue.Message, _ retry.Strategy) error {
			out <- msg
			return nil
		})

	handlerMock.EXPECT().HandleMessage(gomock.Any(), msg, gomock.Any()).
		Do(func(_ context.Context, m queue.Message, _ retry.Strategy) {
			handled <- m
		})

	w := New("email", consumerMock, handlerMock)
	done := make(chan struct{})
	go func() {
		w.Run(ctx, retry.Strategy{}, 2)
		close(done)
	}()

	select {
	case got := <-handled:
		assert.Equal(t, msg.NotificationID, got.NotificationID)
	case <-time.After(time.Second):
		t.Fatal("message was not handled")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestWorker_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	consumerMock := mocks.NewMockmessageConsumer(ctrl)
	handlerMock := mocks.NewMockmessageHandler(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	consumerMock.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	w := New("push", consumerMock, handlerMock)
	done := make(chan struct{})
	go func() {
		w.Run(ctx, retry.Strategy{}, 1)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
