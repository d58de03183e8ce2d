// Package push provides a client for sending push notifications through
// Firebase Cloud Messaging.
package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client sends push notifications via FCM.
type Client struct {
	client *messaging.Client
}

// NewClient initializes a Firebase app and its messaging client. The
// credentials file is optional; without it the default application
// credentials are used.
func NewClient(ctx context.Context, credentialsFile, projectID string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize messaging client: %w", err)
	}

	return &Client{client: client}, nil
}

// Send delivers one push message to the device token. Image and link are
// optional.
func (c *Client) Send(ctx context.Context, token, title, body string, data map[string]string, imageURL, link string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title:    title,
			Body:     body,
			ImageURL: imageURL,
		},
		Data: data,
	}

	if link != "" {
		msg.Webpush = &messaging.WebpushConfig{
			FCMOptions: &messaging.WebpushFCMOptions{Link: link},
		}
	}

	if _, err := c.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("send push message: %w", err)
	}

	return nil
}
