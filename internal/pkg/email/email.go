package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendStudentNotice(ctx context.Context, toEmail, toName, subject, body string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Configured reports whether enough settings are present to reach a server.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
	send   sendFunc
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// SendStudentNotice sends a plain notice to a student. Without SMTP
// credentials the message is only logged.
func (s *EmailServiceImpl) SendStudentNotice(ctx context.Context, toEmail, toName, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("recipient address is empty")
	}

	if !s.config.Configured() {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("toName", toName).
			Str("subject", subject).
			Msg("SMTP credentials not configured - student notice not sent")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if err := s.send(serverAddress, auth, s.config.From, []string{toEmail}, buildMessage(s.config.From, toEmail, toName, subject, body)); err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Student notice sent")
	return nil
}

func buildMessage(from, toEmail, toName, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	if toName != "" {
		b.WriteString(fmt.Sprintf("To: %s <%s>\r\n", toName, toEmail))
	} else {
		b.WriteString("To: " + toEmail + "\r\n")
	}
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
