package service

import (
	"context"
	"time"
)

type ViewEvent struct {
	Type string    `json:"type"`
	Path string    `json:"path"`
	At   time.Time `json:"at"`
}

type ContactEvent struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}

// EventPublisher is the analytics sink. Publishing is best effort:
// callers log failures and move on.
type EventPublisher interface {
	PublishView(ctx context.Context, event ViewEvent) error
	PublishContact(ctx context.Context, event ContactEvent) error
}
