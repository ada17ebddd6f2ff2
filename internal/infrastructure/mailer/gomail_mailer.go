// Package mailer implementa el envío de correo saliente vía SMTP.
package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jdgomez/taller-api/internal/application/usecase"
	"github.com/jdgomez/taller-api/pkg/config"
)

var _ usecase.Mailer = (*GomailMailer)(nil)

// GomailMailer implementa usecase.Mailer sobre SMTP con gomail.
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailMailer construye el mailer desde la configuración SMTP.
func NewGomailMailer(cfg config.MailConfig) *GomailMailer {
	return &GomailMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send envía un correo HTML a un destinatario.
func (m *GomailMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: enviar correo: %w", err)
	}
	return nil
}
