package email

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderApprovalEmail(t *testing.T) {
	subject, body, err := RenderApprovalEmail("Ada <Lovelace>", "https://alumni.example.com/login")
	require.NoError(t, err)
	assert.Contains(t, subject, "approved")
	assert.Contains(t, body, "Ada &lt;Lovelace&gt;")
	assert.Contains(t, body, "https://alumni.example.com/login")
}

func TestRenderApprovalEmailWithoutLoginURL(t *testing.T) {
	_, body, err := RenderApprovalEmail("Ada", "")
	require.NoError(t, err)
	assert.NotContains(t, body, "Sign in</a>")
}

func TestSendApprovalEmailWithoutCredentialsIsLoggedOnly(t *testing.T) {
	var out strings.Builder
	svc := NewEmailService(SMTPConfig{Host: "smtp.invalid", Port: 25}, zerolog.New(&out))

	err := svc.SendApprovalEmail(context.Background(), "ada@example.com", "Ada")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ada@example.com")
}

func TestBuildMessageHeaders(t *testing.T) {
	svc := &EmailServiceImpl{config: SMTPConfig{FromName: "Alumni", FromEmail: "noreply@example.com"}}
	msg := string(svc.buildMessage("ada@example.com", "Hi", "<p>body</p>"))

	assert.True(t, strings.HasPrefix(msg, "Content-Type: text/html; charset=UTF-8\r\n"))
	assert.Contains(t, msg, "From: Alumni <noreply@example.com>\r\n")
	assert.Contains(t, msg, "To: ada@example.com\r\n")
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>body</p>"))
}
