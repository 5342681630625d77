package adapter

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
)

type smtpMailer struct {
	host string
	addr string
	from string
	auth smtp.Auth

	dialer *net.Dialer
	logger *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] for cfg. With an empty host every Send
// fails with [ErrMailDisabled].
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) Mailer {
	m := &smtpMailer{
		host:   cfg.Host,
		addr:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from:   cfg.From,
		dialer: &net.Dialer{Timeout: 10 * time.Second},
		logger: logger,
	}
	if m.from == "" {
		m.from = cfg.User
	}
	if cfg.User != "" {
		m.auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return m
}

func (m *smtpMailer) Send(ctx context.Context, msg models.MailMessage) error {
	if m.host == "" {
		return ErrMailDisabled
	}
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}

	conn, err := m.dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return fmt.Errorf("error dialing smtp server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("error greeting smtp server: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return fmt.Errorf("error starting tls: %w", err)
		}
	}
	if m.auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err = c.Auth(m.auth); err != nil {
				return fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err = c.Mail(m.from); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	for _, rcpt := range msg.To {
		if err = c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp RCPT TO %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err = w.Write(buildMessage(m.from, msg)); err != nil {
		return fmt.Errorf("error writing message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("error finishing message: %w", err)
	}

	return c.Quit()
}

// buildMessage renders a UTF-8 plain-text message with CRLF line endings.
func buildMessage(from string, msg models.MailMessage) []byte {
	var b bytes.Buffer
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(msg.To, ", ") + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")

	body := strings.ReplaceAll(msg.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return b.Bytes()
}
