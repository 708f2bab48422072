// Package mailer sends transactional email through SendGrid's v3 REST API.
// The auth flow depends only on the Mailer interface so tests can substitute
// a fake and force delivery failures.
package mailer

import "context"

// Mailer is the outbound email contract consumed by the auth service.
type Mailer interface {
	// Send delivers a single HTML email. A non-nil error means the message
	// was not accepted by the provider; callers decide how to recover.
	Send(ctx context.Context, to, subject, html string) error
}
