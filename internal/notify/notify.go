package notify

import (
	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
)

// New builds the notifier chain: SMTP when a host is configured, the log
// notifier otherwise, wrapped in a [RetryNotifier] when retries are enabled.
func New(cfg config.Notifier, frontendURL string, log *logger.Logger) (Notifier, error) {
	var notifier Notifier

	if cfg.SMTPHost == "" {
		log.Info().Str("func", "notify.New").Msg("no SMTP host configured, emails are written to the log")
		notifier = NewLogNotifier(frontendURL)
	} else {
		smtpNotifier, err := NewSMTPNotifier(cfg, frontendURL)
		if err != nil {
			return nil, err
		}
		notifier = smtpNotifier
	}

	if cfg.RetryAttempts > 0 {
		notifier = NewRetryNotifier(notifier, cfg.RetryAttempts, cfg.RetryBaseDelay)
	}

	return notifier, nil
}
