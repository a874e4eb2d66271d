// Package notify tells the site owner about new contact messages.
package notify

import (
	"context"
	"time"

	"github.com/SAI-CHANDHAN/My-portfolio/internal/contact/domain"
)

// Notifier is called after a message has been stored. Errors are reported to
// the caller but must not undo the submission.
type Notifier interface {
	Notify(ctx context.Context, m domain.Message) error
}

// Event is the payload published for each new message.
type Event struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

const EventMessageReceived = "contact.message.received"

func NewEvent(m domain.Message) Event {
	return Event{
		Type:      EventMessageReceived,
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
