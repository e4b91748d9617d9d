package notify

import (
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-user-accounts/models"
	"github.com/google/uuid"
)

// linkPaths maps each template to the frontend page that consumes its token.
var linkPaths = map[models.EmailTemplate]string{
	models.EmailTemplateRegister:       "confirm",
	models.EmailTemplateChangePassword: "reset-password",
}

// buildLink returns "<frontendURL>/<page>?email=..&token=..".
func buildLink(frontendURL string, template models.EmailTemplate, email string, token uuid.UUID) (string, error) {
	if !template.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, template)
	}
	page := linkPaths[template]

	u, err := url.Parse(frontendURL)
	if err != nil {
		return "", fmt.Errorf("invalid frontend url: %w", err)
	}

	u = u.JoinPath(page)
	u.RawQuery = url.Values{
		"email": []string{email},
		"token": []string{token.String()},
	}.Encode()

	return u.String(), nil
}
