package notify

import (
	"context"

	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier sends a templated notification carrying securityToken to the
// owner of email.
type Notifier interface {
	Send(ctx context.Context, template models.EmailTemplate, email, fullName string, securityToken uuid.UUID) error
}
