package domain

import (
	"encoding/json"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message statuses.
const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

var Statuses = []string{StatusNew, StatusRead, StatusReplied, StatusArchived}

// Message is a contact form submission. Read state is derived from Status and
// never stored.
type Message struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	Status    string             `bson:"status" json:"status"`
	IPAddress string             `bson:"ipAddress" json:"ipAddress"`
	UserAgent string             `bson:"userAgent" json:"userAgent"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (m Message) IsRead() bool {
	return m.Status != StatusNew
}

func (m Message) MarshalJSON() ([]byte, error) {
	type plain Message
	return json.Marshal(struct {
		plain
		IsRead bool `json:"isRead"`
	}{plain(m), m.IsRead()})
}

// Submission is a public contact form post plus request metadata.
type Submission struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

func New(s Submission, now time.Time) *Message {
	return &Message{
		ID:        primitive.NewObjectID(),
		Name:      strings.TrimSpace(s.Name),
		Email:     strings.ToLower(strings.TrimSpace(s.Email)),
		Subject:   strings.TrimSpace(s.Subject),
		Message:   strings.TrimSpace(s.Message),
		Status:    StatusNew,
		IPAddress: s.IPAddress,
		UserAgent: s.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ListFilter narrows the admin listing. An empty Status matches all.
type ListFilter struct {
	Status string
}
