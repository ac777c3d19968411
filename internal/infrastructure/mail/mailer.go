// Package mail implements the outbound relay behind the IMailer boundary.
// Backends: SMTP (production default of the studio), SendGrid, and a
// console writer for development. Transport-level diagnostics are wrapped,
// never rewritten, so connection refusals and auth failures stay readable.
package mail

import (
	"errors"
	"fmt"

	appconfig "mwonto_studio/internal/infrastructure/config"
	"mwonto_studio/internal/usecase/interfaces"
)

var ErrUnknownBackend = errors.New("unknown mail backend")

// NewMailer selects the backend from configuration.
func NewMailer(cfg appconfig.Mail) (interfaces.IMailer, error) {
	switch cfg.Backend {
	case "smtp":
		return NewSMTPMailer(cfg)
	case "sendgrid":
		return NewSendgridMailer(cfg)
	case "console", "":
		return NewConsoleMailer(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
