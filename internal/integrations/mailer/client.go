package mailer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/wneessen/go-mail"
)

// Client клиент для отправки писем через SMTP
type Client struct {
	// mail.Client хранит состояние соединения, поэтому отправки выполняются по одной
	mu          sync.Mutex
	smtp        *mail.Client
	fromName    string
	fromAddress string
	log         Logger
}

// NewClient создает новый экземпляр SMTP-клиента.
// Соединение устанавливается заново на каждую отправку.
func NewClient(settings Settings, timeout time.Duration, log Logger) (*Client, error) {
	opts := []mail.Option{
		mail.WithPort(settings.Port),
		mail.WithTimeout(timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if settings.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(settings.Username),
			mail.WithPassword(settings.Password),
		)
	}

	smtp, err := mail.NewClient(settings.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create smtp client: %v", ErrSend, err)
	}

	return &Client{
		smtp:        smtp,
		fromName:    settings.FromName,
		fromAddress: settings.FromAddress,
		log:         log,
	}, nil
}

// Send отправляет письмо всем получателям
func (c *Client) Send(ctx context.Context, message Message) error {
	msg, err := c.buildMsg(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	err = c.smtp.DialAndSendWithContext(ctx, msg)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: to=%v subject=%q: %v", ErrSend, message.To, message.Subject, err)
	}

	c.log.Info("Mail sent: to=%v, subject=%q", message.To, message.Subject)
	return nil
}

func (c *Client) buildMsg(message Message) (*mail.Msg, error) {
	if len(message.To) == 0 {
		return nil, fmt.Errorf("%w: no recipients", ErrInvalidMessage)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(c.fromName, c.fromAddress); err != nil {
		return nil, fmt.Errorf("%w: from address %q: %v", ErrInvalidMessage, c.fromAddress, err)
	}
	if err := msg.To(message.To...); err != nil {
		return nil, fmt.Errorf("%w: recipients %v: %v", ErrInvalidMessage, message.To, err)
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextHTML, message.HTMLBody)

	return msg, nil
}
