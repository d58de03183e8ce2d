package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/notification-dispatcher/internal/mocks/service/notification"
	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
	"github.com/aliskhannn/notification-dispatcher/internal/repository/status"
)

func setupService(t *testing.T) (*Service, *mocks.MockstatusRepository, *mocks.MockmessagePublisher, *mocks.MockdedupIndex, *mocks.Mockcache) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockstatusRepository(ctrl)
	queueMock := mocks.NewMockmessagePublisher(ctrl)
	dedupMock := mocks.NewMockdedupIndex(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := NewService(repoMock, queueMock, dedupMock, cacheMock)
	return svc, repoMock, queueMock, dedupMock, cacheMock
}

func emailRequest() model.NotificationRequest {
	return model.NotificationRequest{
		Channel:      model.ChannelEmail,
		UserID:       uuid.New(),
		Email:        "user@example.com",
		TemplateCode: "welcome",
		Variables:    map[string]string{"name": "Alice"},
		RequestID:    "req-1",
	}
}

func TestService_Submit_Success(t *testing.T) {
	svc, repoMock, queueMock, dedupMock, _ := setupService(t)

	req := emailRequest()
	notificationID := uuid.New()
	strategy := retry.Strategy{}

	dedupMock.EXPECT().Lookup(gomock.Any(), strategy, req.RequestID).Return(uuid.Nil, false, nil)
	repoMock.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(model.StatusRecord{})).Return(notificationID, nil)
	queueMock.EXPECT().Publish(gomock.AssignableToTypeOf(queue.Message{}), strategy).
		DoAndReturn(func(msg queue.Message, _ retry.Strategy) error {
			assert.Equal(t, notificationID, msg.NotificationID)
			assert.Equal(t, model.ChannelEmail, msg.Channel)
			assert.Equal(t, 0, msg.RetryCount)
			return nil
		})
	dedupMock.EXPECT().MarkProcessed(gomock.Any(), strategy, req.RequestID, notificationID).Return(nil)

	res, err := svc.Submit(context.Background(), strategy, req)
	assert.NoError(t, err)
	assert.Equal(t, notificationID, res.NotificationID)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.False(t, res.AlreadyProcessed)
}

func TestService_Submit_DedupHit(t *testing.T) {
	svc, repoMock, _, dedupMock, _ := setupService(t)

	req := emailRequest()
	existingID := uuid.New()
	strategy := retry.Strategy{}

	dedupMock.EXPECT().Lookup(gomock.Any(), strategy, req.RequestID).Return(existingID, true, nil)
	repoMock.EXPECT().GetByID(gomock.Any(), existingID).Return(model.StatusRecord{
		NotificationID: existingID,
		RequestID:      req.RequestID,
		Status:         model.StatusDelivered,
	}, nil)

	res, err := svc.Submit(context.Background(), strategy, req)
	assert.NoError(t, err)
	assert.True(t, res.AlreadyProcessed)
	assert.Equal(t, existingID, res.NotificationID)
	assert.Equal(t, model.StatusDelivered, res.Status)
}

func TestService_Submit_DuplicateRequestID(t *testing.T) {
	svc, repoMock, _, dedupMock, _ := setupService(t)

	req := emailRequest()
	existingID := uuid.New()
	strategy := retry.Strategy{}

	// The index misses but the unique request_id column catches the race.
	dedupMock.EXPECT().Lookup(gomock.Any(), strategy, req.RequestID).Return(uuid.Nil, false, nil)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, status.ErrDuplicateRequest)
	repoMock.EXPECT().GetByRequestID(gomock.Any(), req.RequestID).Return(model.StatusRecord{
		NotificationID: existingID,
		RequestID:      req.RequestID,
		Status:         model.StatusPending,
	}, nil)

	res, err := svc.Submit(context.Background(), strategy, req)
	assert.NoError(t, err)
	assert.True(t, res.AlreadyProcessed)
	assert.Equal(t, existingID, res.NotificationID)
}

func TestService_Submit_PublishFailureRollsBack(t *testing.T) {
	svc, repoMock, queueMock, dedupMock, _ := setupService(t)

	req := emailRequest()
	notificationID := uuid.New()
	strategy := retry.Strategy{}

	dedupMock.EXPECT().Lookup(gomock.Any(), strategy, req.RequestID).Return(uuid.Nil, false, nil)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(notificationID, nil)
	queueMock.EXPECT().Publish(gomock.Any(), strategy).Return(errors.New("broker down"))
	repoMock.EXPECT().Delete(gomock.Any(), notificationID).Return(nil)

	_, err := svc.Submit(context.Background(), strategy, req)
	assert.ErrorIs(t, err, ErrPublishFailed)
}

func TestService_Submit_InvalidRequest(t *testing.T) {
	svc, _, _, _, _ := setupService(t)

	req := emailRequest()
	req.Email = ""

	_, err := svc.Submit(context.Background(), retry.Strategy{}, req)
	assert.ErrorIs(t, err, model.ErrInvalidRequest)
}

func TestService_SubmitBroadcast_ChannelsIndependent(t *testing.T) {
	svc, repoMock, queueMock, dedupMock, _ := setupService(t)

	req := model.BroadcastRequest{
		UserID:            uuid.New(),
		Email:             "user@example.com",
		PushToken:         "device-token",
		EmailTemplateCode: "welcome-email",
		PushTemplateCode:  "welcome-push",
		RequestID:         "req-2",
	}
	strategy := retry.Strategy{}

	emailID := uuid.New()

	dedupMock.EXPECT().Lookup(gomock.Any(), strategy, "req-2:email").Return(uuid.Nil, false, nil)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(emailID, nil)
	queueMock.EXPECT().Publish(gomock.Any(), strategy).Return(nil)
	dedupMock.EXPECT().MarkProcessed(gomock.Any(), strategy, "req-2:email", emailID).Return(nil)

	// Push channel fails at the store; the email result must be unaffected.
	dedupMock.EXPECT().Lookup(gomock.Any(), strategy, "req-2:push").Return(uuid.Nil, false, nil)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db down"))

	results := svc.SubmitBroadcast(context.Background(), strategy, req)
	assert.Len(t, results, 2)

	assert.Equal(t, model.ChannelEmail, results[0].Channel)
	assert.Equal(t, emailID, results[0].NotificationID)
	assert.Empty(t, results[0].Error)

	assert.Equal(t, model.ChannelPush, results[1].Channel)
	assert.NotEmpty(t, results[1].Error)
}

func TestService_GetStatusByID_CacheHit(t *testing.T) {
	svc, _, _, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	cached, _ := json.Marshal(model.StatusRecord{NotificationID: id, Status: model.StatusDelivered})
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return(string(cached), nil)

	rec, err := svc.GetStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusDelivered, rec.Status)
}

func TestService_GetStatusByID_CacheMiss(t *testing.T) {
	svc, repoMock, _, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}
	stored := model.StatusRecord{NotificationID: id, Status: model.StatusPending}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("", redis.Nil)
	repoMock.EXPECT().GetByID(gomock.Any(), id).Return(stored, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), gomock.Any()).Return(nil)

	rec, err := svc.GetStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, stored.NotificationID, rec.NotificationID)
}

func TestService_GetBulk_ReportsMissingIDs(t *testing.T) {
	svc, repoMock, _, _, _ := setupService(t)

	found := uuid.New()
	missing := uuid.New()
	ids := []uuid.UUID{found, missing}

	repoMock.EXPECT().GetBulk(gomock.Any(), ids).Return([]model.StatusRecord{{NotificationID: found}}, nil)

	result, err := svc.GetBulk(context.Background(), ids)
	assert.NoError(t, err)
	assert.Len(t, result.Found, 1)
	assert.Equal(t, []uuid.UUID{missing}, result.NotFoundIDs)
}

func TestService_GetBulk_TooManyIDs(t *testing.T) {
	svc, _, _, _, _ := setupService(t)

	ids := make([]uuid.UUID, MaxBulkIDs+1)
	for i := range ids {
		ids[i] = uuid.New()
	}

	_, err := svc.GetBulk(context.Background(), ids)
	assert.ErrorIs(t, err, model.ErrInvalidRequest)
}

func TestService_UpdateStatus(t *testing.T) {
	svc, repoMock, _, _, cacheMock := setupService(t)

	id := uuid.New()
	strategy := retry.Strategy{}

	repoMock.EXPECT().UpdateStatus(gomock.Any(), id, model.StatusDelivered, "").Return(nil)
	repoMock.EXPECT().GetByID(gomock.Any(), id).Return(model.StatusRecord{NotificationID: id, Status: model.StatusDelivered}, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), gomock.Any()).Return(nil)

	err := svc.MarkDelivered(context.Background(), strategy, id)
	assert.NoError(t, err)
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc, _, _, _, _ := setupService(t)

	err := svc.UpdateStatus(context.Background(), retry.Strategy{}, uuid.New(), "cancelled", "")
	assert.ErrorIs(t, err, model.ErrInvalidRequest)
}
