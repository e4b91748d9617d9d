package notify

import (
	"context"

	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
)

// LogNotifier writes notifications to the request logger instead of sending
// them. It is selected when no SMTP host is configured.
type LogNotifier struct {
	frontendURL string
}

func NewLogNotifier(frontendURL string) *LogNotifier {
	return &LogNotifier{frontendURL: frontendURL}
}

func (l *LogNotifier) Send(ctx context.Context, template models.EmailTemplate, email, fullName string, securityToken uuid.UUID) error {
	log := logger.FromContext(ctx)

	link, err := buildLink(l.frontendURL, template, email, securityToken)
	if err != nil {
		log.Err(err).Str("func", "*LogNotifier.Send").Str("template", template.String()).Msg("cannot build link")
		return err
	}

	log.Info().
		Str("func", "*LogNotifier.Send").
		Str("template", template.String()).
		Str("email", email).
		Str("full_name", fullName).
		Str("link", link).
		Msg("email notification")

	return nil
}
