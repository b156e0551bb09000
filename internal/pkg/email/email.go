package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendApprovalEmail(ctx context.Context, toEmail, toName string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
	LoginURL  string // Link placed in the approval email
}

// EmailServiceImpl implements EmailService over SMTP
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
	dialer *net.Dialer
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
		dialer: &net.Dialer{},
	}
}

var approvalTemplate = template.Must(template.New("approval").Parse(`
<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">Your alumni account has been approved</h2>
		<p>Hello {{.Name}},</p>
		<p>An administrator has approved your registration. You can now sign in and connect with fellow alumni.</p>
		{{if .LoginURL}}
		<div style="text-align: center; margin: 30px 0;">
			<a href="{{.LoginURL}}" style="background-color: #4a86e8; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold;">Sign in</a>
		</div>
		{{end}}
		<p>Best regards,<br>The Alumni Network Team</p>
	</div>
</body>
</html>
`))

// RenderApprovalEmail returns the subject and HTML body of the approval notice
func RenderApprovalEmail(toName, loginURL string) (string, string, error) {
	var buf bytes.Buffer
	err := approvalTemplate.Execute(&buf, struct {
		Name     string
		LoginURL string
	}{Name: toName, LoginURL: loginURL})
	if err != nil {
		return "", "", fmt.Errorf("failed to render approval email: %w", err)
	}
	return "Your Alumni Network account is approved", buf.String(), nil
}

// SendApprovalEmail notifies a user that an administrator approved the account
func (s *EmailServiceImpl) SendApprovalEmail(ctx context.Context, toEmail, toName string) error {
	subject, body, err := RenderApprovalEmail(toName, s.config.LoginURL)
	if err != nil {
		return err
	}

	// Without credentials (local development) the notice is only logged
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("toName", toName).
			Msg("SMTP credentials not configured - approval email not sent.")
		return nil
	}

	return s.sendHTMLEmail(ctx, toEmail, subject, body)
}

// buildMessage assembles the RFC 5322 message with stable header order
func (s *EmailServiceImpl) buildMessage(toEmail, subject, htmlBody string) []byte {
	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var msg bytes.Buffer
	for _, k := range keys {
		fmt.Fprintf(&msg, "%s: %s\r\n", k, headers[k])
	}
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	return msg.Bytes()
}

// sendHTMLEmail sends an HTML email, honouring ctx for the dial and deadline
func (s *EmailServiceImpl) sendHTMLEmail(ctx context.Context, toEmail, subject, htmlBody string) error {
	serverAddress := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	var conn net.Conn
	var err error
	if s.config.UseTLS {
		tlsDialer := &tls.Dialer{NetDialer: s.dialer, Config: &tls.Config{ServerName: s.config.Host}}
		conn, err = tlsDialer.DialContext(ctx, "tcp", serverAddress)
	} else {
		conn, err = s.dialer.DialContext(ctx, "tcp", serverAddress)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create SMTP client")
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if !s.config.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.config.Host}); err != nil {
				return fmt.Errorf("failed to start TLS: %w", err)
			}
		}
	}

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(s.buildMessage(toEmail, subject, htmlBody)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}
