package deadletter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/notification-dispatcher/internal/mocks/service/deadletter"
	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
)

func setupService(t *testing.T) (*Service, *mocks.MockfailedRepository, *mocks.MockmessagePublisher, *mocks.MockfailedConsumer) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockfailedRepository(ctrl)
	queueMock := mocks.NewMockmessagePublisher(ctrl)
	consumerMock := mocks.NewMockfailedConsumer(ctrl)

	svc := NewService(repoMock, queueMock, consumerMock)
	return svc, repoMock, queueMock, consumerMock
}

func retainedMessage(id uuid.UUID) model.FailedMessage {
	return model.FailedMessage{
		NotificationID: id,
		UserID:         uuid.New(),
		Channel:        model.ChannelEmail,
		Recipient:      "user@example.com",
		TemplateCode:   "welcome",
		Variables:      map[string]string{"name": "Alice"},
		RequestID:      "req-1",
		RetryCount:     3,
		Error:          "smtp: connection refused",
		ErrorCategory:  model.CategorySMTP,
		OriginalQueue:  "email.queue",
		FailedAt:       time.Now().UTC(),
	}
}

func TestService_Run_RetainsMessages(t *testing.T) {
	svc, repoMock, _, consumerMock := setupService(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	id := uuid.New()
	saved := make(chan model.FailedMessage, 1)

	consumerMock.EXPECT().ConsumeFailed(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, out chan<- queue.FailedMessage, _ retry.Strategy) error {
			// One malformed message without an id, then a valid one.
			out <- queue.FailedMessage{Message: queue.Message{RequestID: "orphan"}}
			out <- queue.FailedMessage{
				Message: queue.Message{
					NotificationID: id,
					Channel:        model.ChannelEmail,
					Email:          "user@example.com",
				},
				Error:         "smtp: timeout",
				ErrorCategory: model.CategorySMTP,
				OriginalQueue: "email.queue",
			}
			return nil
		})

	repoMock.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg model.FailedMessage) error {
			saved <- msg
			return nil
		})

	go svc.Run(ctx, retry.Strategy{})

	select {
	case msg := <-saved:
		assert.Equal(t, id, msg.NotificationID)
		assert.Equal(t, "user@example.com", msg.Recipient)
		assert.False(t, msg.FailedAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("message was not retained")
	}
}

func TestService_Retry_RequeuesAndDeletes(t *testing.T) {
	svc, repoMock, queueMock, _ := setupService(t)

	id := uuid.New()
	retained := retainedMessage(id)
	strategy := retry.Strategy{}

	repoMock.EXPECT().Get(gomock.Any(), id).Return(retained, nil)
	queueMock.EXPECT().Publish(gomock.Any(), strategy).
		DoAndReturn(func(msg queue.Message, _ retry.Strategy) error {
			assert.Equal(t, id, msg.NotificationID)
			assert.Equal(t, 0, msg.RetryCount)
			assert.Equal(t, retained.Recipient, msg.Email)
			return nil
		})
	repoMock.EXPECT().Delete(gomock.Any(), id).Return(nil)

	err := svc.Retry(context.Background(), strategy, id)
	assert.NoError(t, err)
}

func TestService_Retry_PushRecipient(t *testing.T) {
	svc, repoMock, queueMock, _ := setupService(t)

	id := uuid.New()
	retained := retainedMessage(id)
	retained.Channel = model.ChannelPush
	retained.Recipient = "device-token"
	strategy := retry.Strategy{}

	repoMock.EXPECT().Get(gomock.Any(), id).Return(retained, nil)
	queueMock.EXPECT().Publish(gomock.Any(), strategy).
		DoAndReturn(func(msg queue.Message, _ retry.Strategy) error {
			assert.Equal(t, "device-token", msg.PushToken)
			assert.Empty(t, msg.Email)
			return nil
		})
	repoMock.EXPECT().Delete(gomock.Any(), id).Return(nil)

	err := svc.Retry(context.Background(), strategy, id)
	assert.NoError(t, err)
}

func TestService_RetryBulk_TalliesIndependently(t *testing.T) {
	svc, repoMock, queueMock, _ := setupService(t)

	good := uuid.New()
	bad := uuid.New()
	strategy := retry.Strategy{}

	repoMock.EXPECT().Get(gomock.Any(), good).Return(retainedMessage(good), nil)
	queueMock.EXPECT().Publish(gomock.Any(), strategy).Return(nil)
	repoMock.EXPECT().Delete(gomock.Any(), good).Return(nil)

	repoMock.EXPECT().Get(gomock.Any(), bad).Return(model.FailedMessage{}, errors.New("db down"))

	result := svc.RetryBulk(context.Background(), strategy, []uuid.UUID{good, bad})
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Failed)
}

func TestService_List_DefaultLimit(t *testing.T) {
	svc, repoMock, _, _ := setupService(t)

	repoMock.EXPECT().List(gomock.Any(), 50).Return([]model.FailedMessage{}, nil)

	_, err := svc.List(context.Background(), 0)
	assert.NoError(t, err)
}

func TestService_Stats(t *testing.T) {
	svc, repoMock, _, _ := setupService(t)

	stats := model.DeadLetterStats{
		Total:      2,
		ByChannel:  map[model.Channel]int{model.ChannelEmail: 2},
		ByCategory: map[model.ErrorCategory]int{model.CategorySMTP: 2},
	}
	repoMock.EXPECT().Stats(gomock.Any()).Return(stats, nil)

	got, err := svc.Stats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stats, got)
}
