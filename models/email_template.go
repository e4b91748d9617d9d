package models

// EmailTemplate selects which notification is sent to an account owner.
type EmailTemplate string

const (
	// EmailTemplateRegister asks the owner to confirm a fresh registration.
	EmailTemplateRegister EmailTemplate = "register"

	// EmailTemplateChangePassword carries a password reset token.
	EmailTemplateChangePassword EmailTemplate = "change_password"
)

// String implements [fmt.Stringer].
func (t EmailTemplate) String() string {
	return string(t)
}

// IsValid reports whether t is one of the known templates.
func (t EmailTemplate) IsValid() bool {
	switch t {
	case EmailTemplateRegister, EmailTemplateChangePassword:
		return true
	default:
		return false
	}
}
