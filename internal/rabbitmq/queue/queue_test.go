package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
)

func TestRetryDelay_DoublesPerAttempt(t *testing.T) {
	base := 5 * time.Second

	assert.Equal(t, 5*time.Second, RetryDelay(base, 1))
	assert.Equal(t, 10*time.Second, RetryDelay(base, 2))
	assert.Equal(t, 20*time.Second, RetryDelay(base, 3))
	assert.Equal(t, 40*time.Second, RetryDelay(base, 4))
}

func TestRetryDelay_ClampsBelowFirstAttempt(t *testing.T) {
	base := 5 * time.Second

	assert.Equal(t, base, RetryDelay(base, 0))
	assert.Equal(t, base, RetryDelay(base, -1))
}

func TestRetryQueueNaming(t *testing.T) {
	assert.Equal(t, "email.queue.retry.1", retryQueueName(model.ChannelEmail, 1))
	assert.Equal(t, "push.queue.retry.2", retryQueueName(model.ChannelPush, 2))

	assert.Equal(t, "email.retry.1", retryRoutingKey(model.ChannelEmail, 1))
	assert.Equal(t, "push.retry.2", retryRoutingKey(model.ChannelPush, 2))
}

func TestMessage_Recipient(t *testing.T) {
	emailMsg := Message{Channel: model.ChannelEmail, Email: "user@example.com", PushToken: "token"}
	assert.Equal(t, "user@example.com", emailMsg.Recipient())

	pushMsg := Message{Channel: model.ChannelPush, Email: "user@example.com", PushToken: "token"}
	assert.Equal(t, "token", pushMsg.Recipient())
}

func TestFailedMessage_FlatJSON(t *testing.T) {
	failed := FailedMessage{
		Message: Message{
			NotificationID: uuid.New(),
			Channel:        model.ChannelEmail,
			Email:          "user@example.com",
			TemplateCode:   "welcome",
		},
		Error:         "smtp: timeout",
		ErrorCategory: model.CategorySMTP,
		OriginalQueue: "email.queue",
	}

	body, err := json.Marshal(failed)
	assert.NoError(t, err)

	// The embedded message must flatten into the envelope, not nest.
	var raw map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &raw))
	assert.Contains(t, raw, "notification_id")
	assert.Contains(t, raw, "error_category")
	assert.NotContains(t, raw, "Message")

	var decoded FailedMessage
	assert.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, failed.NotificationID, decoded.NotificationID)
	assert.Equal(t, failed.ErrorCategory, decoded.ErrorCategory)
}
