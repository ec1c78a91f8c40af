// Package notify announces job feed imports to interested consumers.
//
//go:generate mockgen -package mocknotify -source=notify.go -destination=mock/mocknotify.go *
package notify

import (
	"context"

	"careerguide/pkg/domain"
)

// Publisher delivers feed events. Publishing is best effort: callers log
// failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, event domain.FeedEvent) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, domain.FeedEvent) error { return nil }
