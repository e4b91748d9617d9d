// Package notify delivers account emails: the registration confirmation
// link and the password reset link.
//
// [SMTPNotifier] renders HTML bodies from embedded templates and sends them
// through an SMTP relay. [LogNotifier] writes the same links to the logger
// for local runs without a mail server. [RetryNotifier] wraps either one with
// bounded exponential backoff. Use [New] to assemble the chain from
// configuration.
package notify
