package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templatesFS embed.FS

var subjects = map[models.EmailTemplate]string{
	models.EmailTemplateRegister:       "Confirm your email address",
	models.EmailTemplateChangePassword: "Reset your password",
}

type sendMailFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier renders HTML emails and sends them through an SMTP relay.
type SMTPNotifier struct {
	addr        string
	auth        smtp.Auth
	from        string
	frontendURL string

	templates *template.Template
	sendMail  sendMailFunc
}

// NewSMTPNotifier parses the embedded templates and prepares PLAIN auth when
// an SMTP user is configured.
func NewSMTPNotifier(cfg config.Notifier, frontendURL string) (*SMTPNotifier, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing email templates: %w", err)
	}

	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}

	return &SMTPNotifier{
		addr:        net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		auth:        auth,
		from:        cfg.From,
		frontendURL: frontendURL,
		templates:   templates,
		sendMail:    sendMailContext,
	}, nil
}

func (s *SMTPNotifier) Send(ctx context.Context, tmpl models.EmailTemplate, email, fullName string, securityToken uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	link, err := buildLink(s.frontendURL, tmpl, email, securityToken)
	if err != nil {
		log.Err(err).Str("func", "*SMTPNotifier.Send").Str("template", tmpl.String()).Msg("cannot build link")
		return err
	}

	body, err := s.render(tmpl, fullName, link, securityToken)
	if err != nil {
		log.Err(err).Str("func", "*SMTPNotifier.Send").Str("template", tmpl.String()).Msg("failed to render email template")
		return err
	}

	msg := s.message(email, subjects[tmpl], body)
	if err = s.sendMail(ctx, s.addr, s.auth, s.from, []string{email}, msg); err != nil {
		log.Err(err).Str("func", "*SMTPNotifier.Send").Str("email", email).Msg("failed to send email")
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	log.Info().Str("func", "*SMTPNotifier.Send").Str("template", tmpl.String()).Str("email", email).Msg("email sent")
	return nil
}

func (s *SMTPNotifier) render(tmpl models.EmailTemplate, fullName, link string, token uuid.UUID) (string, error) {
	var buf bytes.Buffer
	err := s.templates.ExecuteTemplate(&buf, tmpl.String()+".html", struct {
		FullName string
		Link     string
		Token    string
	}{
		FullName: fullName,
		Link:     link,
		Token:    token.String(),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderingTemplate, err)
	}

	return buf.String(), nil
}

func (s *SMTPNotifier) message(to, subject, body string) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		s.from, to, mime.QEncoding.Encode("utf-8", subject), body,
	))
}

// sendMailContext is smtp.SendMail bound to ctx: the dial honours
// cancellation and a done context unblocks any pending read or write.
func sendMailContext(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	err := sendMail(ctx, addr, a, from, to, msg)
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ctx.Err(), err)
	}
	return err
}

func sendMail(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if a != nil {
		if ok, _ := c.Extension("AUTH"); !ok {
			return errors.New("smtp server does not support AUTH")
		}
		if err = c.Auth(a); err != nil {
			return err
		}
	}

	if err = c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err = c.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}

	return c.Quit()
}
