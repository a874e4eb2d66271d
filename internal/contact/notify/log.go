package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
)

// LogNotifier records new messages in the request log. Used when no Redis is
// configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, m domain.Message) error {
	zerolog.Ctx(ctx).Info().
		Str("contact_id", m.ID.Hex()).
		Str("subject", m.Subject).
		Msg("new contact message")
	return nil
}
