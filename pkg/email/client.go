package email

import (
	"gopkg.in/mail.v2"
)

// Client sends email over SMTP.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	fromName string
}

// NewClient creates an SMTP client.
func NewClient(smtpHost string, smtpPort int, username, password, from, fromName string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

// Send delivers one message with a plain-text body and an optional HTML
// alternative.
func (c *Client) Send(to, subject, html, text string) error {
	message := mail.NewMessage()

	message.SetAddressHeader("From", c.from, c.fromName)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", text)
	if html != "" {
		message.AddAlternative("text/html", html)
	}

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	return dialer.DialAndSend(message)
}
