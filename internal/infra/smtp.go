package infra

import (
	"errors"
	"fmt"
	"net/smtp"

	"comanda/internal/config"

	"github.com/jordan-wright/email"
)

// ErrSMTPNoConfigurado is returned when a receipt delivery is attempted with
// no SMTP host or sender configured. Receipt e-mail is optional; the console
// runs fine without it and only this path refuses.
var ErrSMTPNoConfigurado = errors.New("infra: SMTP no configurado")

// Defaults used when the enqueued job carries no subject or body, so a
// receipt never arrives as an empty message.
const (
	defaultReciboSubject = "Recibo de su cuenta"
	defaultReciboBody    = "Adjuntamos el recibo de su cuenta. Gracias por su visita."
)

// Mailer wraps SMTP configuration for sending receipts with PDF attachments.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendRecibo sends a settlement receipt PDF to the customer email.
func (m *Mailer) SendRecibo(to, subject, body, pdfPath string) error {
	if m.host == "" || m.user == "" {
		return ErrSMTPNoConfigurado
	}
	if subject == "" {
		subject = defaultReciboSubject
	}
	if body == "" {
		body = defaultReciboBody
	}

	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: attach PDF: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
