package domain

import (
	"context"
	"time"
)

const (
	// VerbLikedPost is the verb of the notification emitted when someone
	// likes a post for the first time
	VerbLikedPost = "liked your post"
)

// Notification is an append-only record of an event directed at a
// recipient. The target may dangle after the referenced post is deleted,
// notifications are historical records, not live links.
type Notification struct {
	ID          int64     `json:"id"`
	RecipientID int64     `json:"recipient_id"`
	ActorID     int64     `json:"actor_id"`
	Verb        string    `json:"verb"`
	TargetID    int64     `json:"target_id"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`

	// Actor holds the acting user details when filled
	Actor *User `json:"actor,omitempty"`
}

// NotificationRepository defines the data access contract for the ledger.
type NotificationRepository interface {
	// Store appends a single notification.
	Store(ctx context.Context, n *Notification) error

	// BatchStore appends many notifications in one round trip.
	BatchStore(ctx context.Context, ns []Notification) error

	// FetchByRecipient pages over a recipient's notifications, newest
	// first.
	FetchByRecipient(ctx context.Context, recipientID int64, cursor string, limit int64) ([]Notification, error)

	// MarkRead flips the read flag of one notification owned by the
	// recipient. Returns ErrNotFound when no such notification exists.
	MarkRead(ctx context.Context, recipientID, id int64) error

	// CountUnread returns the number of unread notifications.
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
}

// NotificationUsecase defines the business logic contract for reading the
// ledger. Writing goes through the NotifyWorker.
type NotificationUsecase interface {
	FetchFor(ctx context.Context, recipientID int64, cursor string, limit int64) ([]Notification, string, error)
	MarkRead(ctx context.Context, recipientID, id int64) error
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
}

// NotifyWorker decouples notification fan-out from the request path.
// Send never blocks, an overflowing queue drops the event and logs it.
type NotifyWorker interface {
	Start(ctx context.Context)

	// Send enqueues a notification for appending to the ledger.
	Send(n Notification)
}
