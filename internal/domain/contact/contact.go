package contact

import (
	"context"
	"strings"
)

// Message is a contact-form submission. All three fields are required.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MissingFields lists the required fields that are empty or whitespace.
func (m *Message) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(m.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(m.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(m.Message) == "" {
		missing = append(missing, "message")
	}
	return missing
}

// Mail is the outbound message handed to the transport.
type Mail struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers synchronously; a returned error is a delivery failure
// reported to the caller, never retried.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
