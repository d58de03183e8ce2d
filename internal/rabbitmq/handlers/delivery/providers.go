package delivery

import (
	"context"

	"github.com/aliskhannn/notification-dispatcher/internal/model"
	"github.com/aliskhannn/notification-dispatcher/internal/rabbitmq/queue"
	"github.com/aliskhannn/notification-dispatcher/internal/template"
)

type emailSender interface {
	Send(to, subject, html, text string) error
}

type pushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string, imageURL, link string) error
}

// EmailProvider adapts the SMTP client to the delivery contract.
type EmailProvider struct {
	client emailSender
}

func NewEmailProvider(client emailSender) *EmailProvider {
	return &EmailProvider{client: client}
}

func (p *EmailProvider) Deliver(_ context.Context, msg queue.Message, content template.Content) error {
	if err := p.client.Send(msg.Email, content.Subject, content.HTML, content.Text); err != nil {
		return model.NewDeliveryError(model.CategorySMTP, err)
	}

	return nil
}

// PushProvider adapts the FCM client to the delivery contract.
type PushProvider struct {
	client pushSender
}

func NewPushProvider(client pushSender) *PushProvider {
	return &PushProvider{client: client}
}

func (p *PushProvider) Deliver(ctx context.Context, msg queue.Message, content template.Content) error {
	body := content.Text
	if body == "" {
		body = content.HTML
	}

	data := map[string]string{"notification_id": msg.NotificationID.String()}
	for k, v := range msg.Variables {
		data[k] = v
	}

	// Image and link ride in the variables map, mirroring the wire contract.
	if err := p.client.Send(ctx, msg.PushToken, content.Subject, body, data, msg.Variables["image"], msg.Variables["link"]); err != nil {
		return model.NewDeliveryError(model.CategoryPush, err)
	}

	return nil
}
