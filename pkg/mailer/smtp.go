package mailer

import (
	"context"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const dialTimeout = 10 * time.Second

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPSender dials the server for every message.
type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTimeout(dialTimeout),
	)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// LogSender is used when no SMTP account is configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg *mail.Msg) error {
	to, err := msg.GetRecipients()
	if err != nil {
		return err
	}
	zap.L().Info("smtp disabled, email not delivered", zap.Strings("to", to))
	return nil
}
