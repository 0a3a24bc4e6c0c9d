// goudace | 2026
// mailer.go

package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/goudace/shop-backend/internal/config"
)

// Sender delivers transactional email. Implementations are expected to be
// safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *SMTPSender) Send(
	ctx context.Context,
	to, subject, htmlBody string,
) error {
	// gomail dials synchronously and has no context support; honor an
	// already-cancelled context before doing network work.
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}
