package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationRequest_Validate(t *testing.T) {
	base := NotificationRequest{
		Channel:      ChannelEmail,
		UserID:       uuid.New(),
		Email:        "user@example.com",
		TemplateCode: "welcome",
	}

	assert.NoError(t, base.Validate())

	unknown := base
	unknown.Channel = "sms"
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidRequest)

	noEmail := base
	noEmail.Email = ""
	assert.ErrorIs(t, noEmail.Validate(), ErrInvalidRequest)

	pushNoToken := base
	pushNoToken.Channel = ChannelPush
	pushNoToken.PushToken = ""
	assert.ErrorIs(t, pushNoToken.Validate(), ErrInvalidRequest)

	noTemplate := base
	noTemplate.TemplateCode = ""
	assert.ErrorIs(t, noTemplate.Validate(), ErrInvalidRequest)
}

func TestNotificationRequest_Recipient(t *testing.T) {
	req := NotificationRequest{Channel: ChannelEmail, Email: "user@example.com", PushToken: "token"}
	assert.Equal(t, "user@example.com", req.Recipient())

	req.Channel = ChannelPush
	assert.Equal(t, "token", req.Recipient())
}

func TestBroadcastRequest_ChannelRequest(t *testing.T) {
	req := BroadcastRequest{
		UserID:            uuid.New(),
		Email:             "user@example.com",
		PushToken:         "token",
		EmailTemplateCode: "welcome-email",
		PushTemplateCode:  "welcome-push",
		RequestID:         "req-1",
	}

	emailReq := req.ChannelRequest(ChannelEmail)
	assert.Equal(t, ChannelEmail, emailReq.Channel)
	assert.Equal(t, "welcome-email", emailReq.TemplateCode)
	assert.Equal(t, "req-1:email", emailReq.RequestID)

	pushReq := req.ChannelRequest(ChannelPush)
	assert.Equal(t, ChannelPush, pushReq.Channel)
	assert.Equal(t, "welcome-push", pushReq.TemplateCode)
	assert.Equal(t, "req-1:push", pushReq.RequestID)
}

func TestChannel_QueueName(t *testing.T) {
	assert.Equal(t, "email.queue", ChannelEmail.QueueName())
	assert.Equal(t, "push.queue", ChannelPush.QueueName())
}

func TestCategoryOf(t *testing.T) {
	smtpErr := NewDeliveryError(CategorySMTP, assert.AnError)
	assert.Equal(t, CategorySMTP, CategoryOf(smtpErr))

	assert.Equal(t, CategoryUnknown, CategoryOf(assert.AnError))
}
