package output

import "context"

// Mailer is the delivery collaborator for confirmation messages. The core
// only specifies the message content, never the transport.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
