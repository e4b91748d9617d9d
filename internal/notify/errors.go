package notify

import "errors"

var (
	// ErrUnknownTemplate is returned for an [models.EmailTemplate] the
	// notifier has no body or link for. It is never retried.
	ErrUnknownTemplate = errors.New("unknown email template")
	// ErrRenderingTemplate is returned when an email body cannot be rendered.
	ErrRenderingTemplate = errors.New("error rendering email template")
	// ErrSendingEmail wraps transport failures reported by the SMTP relay.
	ErrSendingEmail = errors.New("error sending email")
)
