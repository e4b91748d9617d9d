package notify

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

const defaultRetryBaseDelay = 100 * time.Millisecond

// RetryNotifier re-sends failed notifications with exponential backoff.
// After attempts extra tries the last error is returned.
type RetryNotifier struct {
	next      Notifier
	attempts  uint64
	baseDelay time.Duration
}

func NewRetryNotifier(next Notifier, attempts uint64, baseDelay time.Duration) *RetryNotifier {
	if baseDelay <= 0 {
		baseDelay = defaultRetryBaseDelay
	}

	return &RetryNotifier{
		next:      next,
		attempts:  attempts,
		baseDelay: baseDelay,
	}
}

func (r *RetryNotifier) Send(ctx context.Context, template models.EmailTemplate, email, fullName string, securityToken uuid.UUID) error {
	log := logger.FromContext(ctx)

	backoff := retry.WithMaxRetries(r.attempts, retry.NewExponential(r.baseDelay))

	var attempt int
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		err := r.next.Send(ctx, template, email, fullName, securityToken)
		if err == nil {
			return nil
		}

		if errors.Is(err, ErrUnknownTemplate) || errors.Is(err, ErrRenderingTemplate) {
			return err
		}

		log.Warn().Err(err).
			Str("func", "*RetryNotifier.Send").
			Str("template", template.String()).
			Int("attempt", attempt).
			Msg("notification failed, retrying")
		return retry.RetryableError(err)
	})
}
