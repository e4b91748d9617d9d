package notify

import (
	"context"
	"errors"
	"net/smtp"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	addr string
	auth smtp.Auth
	from string
	to   []string
	msg  string
}

func newTestSMTPNotifier(t *testing.T, sendErr error) (*SMTPNotifier, *[]sentMail) {
	t.Helper()

	n, err := NewSMTPNotifier(config.Notifier{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUser:     "mailer",
		SMTPPassword: "secret",
		From:         "no-reply@example.com",
	}, "https://accounts.example.com")
	require.NoError(t, err)

	var sent []sentMail
	n.sendMail = func(_ context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, sentMail{addr: addr, auth: a, from: from, to: to, msg: string(msg)})
		return sendErr
	}

	return n, &sent
}

func TestSMTPNotifier_SendRegister(t *testing.T) {
	n, sent := newTestSMTPNotifier(t, nil)
	token := uuid.New()

	err := n.Send(context.Background(), models.EmailTemplateRegister, "fred+1@example.com", "Fred <Flintstone>", token)
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	mail := (*sent)[0]
	assert.Equal(t, "smtp.example.com:587", mail.addr)
	assert.NotNil(t, mail.auth)
	assert.Equal(t, "no-reply@example.com", mail.from)
	assert.Equal(t, []string{"fred+1@example.com"}, mail.to)

	assert.Contains(t, mail.msg, "Subject: Confirm your email address\r\n")
	assert.Contains(t, mail.msg, "Content-Type: text/html; charset=UTF-8")
	assert.Contains(t, mail.msg, "https://accounts.example.com/confirm?email=fred%2B1%40example.com&amp;token="+token.String())
	assert.Contains(t, mail.msg, token.String())
	// html/template escapes the user-supplied name
	assert.Contains(t, mail.msg, "Fred &lt;Flintstone&gt;")
	assert.NotContains(t, mail.msg, "<Flintstone>")
}

func TestSMTPNotifier_SendChangePassword(t *testing.T) {
	n, sent := newTestSMTPNotifier(t, nil)
	token := uuid.New()

	err := n.Send(context.Background(), models.EmailTemplateChangePassword, "fred@example.com", "Fred", token)
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	assert.Contains(t, (*sent)[0].msg, "Subject: Reset your password\r\n")
	assert.Contains(t, (*sent)[0].msg, "https://accounts.example.com/reset-password?email=fred%40example.com")
}

func TestSMTPNotifier_UnknownTemplate(t *testing.T) {
	n, sent := newTestSMTPNotifier(t, nil)

	err := n.Send(context.Background(), models.EmailTemplate("welcome_back"), "fred@example.com", "Fred", uuid.New())
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	assert.Empty(t, *sent)
}

func TestSMTPNotifier_TransportError(t *testing.T) {
	relayErr := errors.New("421 service not available")
	n, _ := newTestSMTPNotifier(t, relayErr)

	err := n.Send(context.Background(), models.EmailTemplateRegister, "fred@example.com", "Fred", uuid.New())
	assert.ErrorIs(t, err, ErrSendingEmail)
	assert.ErrorIs(t, err, relayErr)
}

func TestSMTPNotifier_CanceledContext(t *testing.T) {
	n, sent := newTestSMTPNotifier(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Send(ctx, models.EmailTemplateRegister, "fred@example.com", "Fred", uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, *sent)
}

func TestNewSMTPNotifier_NoAuthWithoutUser(t *testing.T) {
	n, err := NewSMTPNotifier(config.Notifier{SMTPHost: "localhost", SMTPPort: 25, From: "a@b.c"}, "http://localhost")
	require.NoError(t, err)
	assert.Nil(t, n.auth)
}

func TestBuildLink(t *testing.T) {
	token := uuid.MustParse("6f1c0d5e-2c3b-4a7e-9f10-3f2a1b0c9d8e")

	link, err := buildLink("http://localhost:8080/app/", models.EmailTemplateRegister, "a b@example.com", token)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/app/confirm", u.Path)
	assert.Equal(t, "a b@example.com", u.Query().Get("email"))
	assert.Equal(t, token.String(), u.Query().Get("token"))
	assert.True(t, strings.HasPrefix(link, "http://localhost:8080/"))

	_, err = buildLink("http://localhost", models.EmailTemplate(""), "a@b.c", token)
	assert.ErrorIs(t, err, ErrUnknownTemplate)

	_, err = buildLink("://bad", models.EmailTemplateRegister, "a@b.c", token)
	assert.Error(t, err)
}
