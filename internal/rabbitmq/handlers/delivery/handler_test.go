package delivery

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/notification-dispatcher/internal/mocks/rabbitmq/handlers/delivery"
	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
	"github.com/aliskhannn/notification-dispatcher/internal/template"
)

const maxRetries = 3

func setupHandler(t *testing.T) (*Handler, *mocks.MockstatusService, *mocks.MockretryPublisher, *mocks.MocktemplateFetcher, *mocks.MockProvider) {
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockstatusService(ctrl)
	publisherMock := mocks.NewMockretryPublisher(ctrl)
	templatesMock := mocks.NewMocktemplateFetcher(ctrl)
	providerMock := mocks.NewMockProvider(ctrl)

	handler := NewHandler(serviceMock, publisherMock, templatesMock, providerMock, maxRetries)
	return handler, serviceMock, publisherMock, templatesMock, providerMock
}

func emailMessage() queue.Message {
	return queue.Message{
		NotificationID: uuid.New(),
		UserID:         uuid.New(),
		Channel:        model.ChannelEmail,
		Email:          "user@example.com",
		TemplateCode:   "welcome",
		Variables:      map[string]string{"name": "Alice"},
	}
}

func TestHandler_HandleMessage_Delivered(t *testing.T) {
	handler, serviceMock, _, templatesMock, providerMock := setupHandler(t)

	msg := emailMessage()
	strategy := retry.Strategy{}
	tmpl := template.Template{Subject: "Hi {{name}}", TextContent: "Hello {{name}}"}

	templatesMock.EXPECT().FetchByCode(gomock.Any(), "welcome").Return(tmpl, nil)
	providerMock.EXPECT().Deliver(gomock.Any(), msg, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ queue.Message, content template.Content) error {
			assert.Equal(t, "Hi Alice", content.Subject)
			assert.Equal(t, "Hello Alice", content.Text)
			return nil
		})
	serviceMock.EXPECT().MarkDelivered(gomock.Any(), strategy, msg.NotificationID).Return(nil)

	handler.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_SchedulesRetry(t *testing.T) {
	handler, serviceMock, publisherMock, templatesMock, providerMock := setupHandler(t)

	msg := emailMessage()
	strategy := retry.Strategy{}
	deliverErr := model.NewDeliveryError(model.CategorySMTP, errors.New("connection refused"))

	templatesMock.EXPECT().FetchByCode(gomock.Any(), "welcome").Return(template.Template{}, nil)
	providerMock.EXPECT().Deliver(gomock.Any(), msg, gomock.Any()).Return(deliverErr)
	serviceMock.EXPECT().MarkRetrying(gomock.Any(), strategy, msg.NotificationID, deliverErr.Error()).Return(nil)
	publisherMock.EXPECT().PublishRetry(gomock.Any(), strategy).
		DoAndReturn(func(m queue.Message, _ retry.Strategy) error {
			assert.Equal(t, 1, m.RetryCount)
			return nil
		})

	handler.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_DeadLettersAtBound(t *testing.T) {
	handler, serviceMock, publisherMock, templatesMock, providerMock := setupHandler(t)

	msg := emailMessage()
	msg.RetryCount = maxRetries - 1
	strategy := retry.Strategy{}
	deliverErr := model.NewDeliveryError(model.CategorySMTP, errors.New("mailbox unavailable"))

	templatesMock.EXPECT().FetchByCode(gomock.Any(), "welcome").Return(template.Template{}, nil)
	providerMock.EXPECT().Deliver(gomock.Any(), msg, gomock.Any()).Return(deliverErr)
	serviceMock.EXPECT().MarkFailed(gomock.Any(), strategy, msg.NotificationID, deliverErr.Error()).Return(nil)
	publisherMock.EXPECT().PublishFailed(gomock.Any(), strategy).
		DoAndReturn(func(failed queue.FailedMessage, _ retry.Strategy) error {
			assert.Equal(t, maxRetries, failed.RetryCount)
			assert.Equal(t, model.CategorySMTP, failed.ErrorCategory)
			assert.Equal(t, "email.queue", failed.OriginalQueue)
			assert.False(t, failed.FailedAt.IsZero())
			return nil
		})

	handler.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_FallbackTemplate(t *testing.T) {
	handler, serviceMock, _, templatesMock, providerMock := setupHandler(t)

	msg := emailMessage()
	msg.Variables = map[string]string{"message": "order shipped"}
	strategy := retry.Strategy{}

	templatesMock.EXPECT().FetchByCode(gomock.Any(), "welcome").Return(template.Template{}, errors.New("template service down"))
	providerMock.EXPECT().Deliver(gomock.Any(), msg, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ queue.Message, content template.Content) error {
			assert.Equal(t, "Notification", content.Subject)
			assert.Equal(t, "order shipped", content.Text)
			return nil
		})
	serviceMock.EXPECT().MarkDelivered(gomock.Any(), strategy, msg.NotificationID).Return(nil)

	handler.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_RetryPublishFailureDeadLetters(t *testing.T) {
	handler, serviceMock, publisherMock, templatesMock, providerMock := setupHandler(t)

	msg := emailMessage()
	strategy := retry.Strategy{}
	deliverErr := model.NewDeliveryError(model.CategorySMTP, errors.New("connection refused"))

	templatesMock.EXPECT().FetchByCode(gomock.Any(), "welcome").Return(template.Template{}, nil)
	providerMock.EXPECT().Deliver(gomock.Any(), msg, gomock.Any()).Return(deliverErr)
	serviceMock.EXPECT().MarkRetrying(gomock.Any(), strategy, msg.NotificationID, deliverErr.Error()).Return(nil)
	publisherMock.EXPECT().PublishRetry(gomock.Any(), strategy).Return(errors.New("broker down"))
	serviceMock.EXPECT().MarkFailed(gomock.Any(), strategy, msg.NotificationID, deliverErr.Error()).Return(nil)
	publisherMock.EXPECT().PublishFailed(gomock.Any(), strategy).Return(nil)

	handler.HandleMessage(context.Background(), msg, strategy)
}
