package domain

import "context"

// BloomRepository tracks the set of post IDs that may exist. It answers
// "definitely absent" cheaply so that comment and like writes against
// deleted or made-up posts can be rejected without touching the database.
type BloomRepository interface {
	// Add puts an ID into the filter
	Add(ctx context.Context, id int64) error

	// Exists checks whether the ID may exist.
	// true: possibly present, confirm against cache or database.
	// false: definitely absent.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd loads many IDs at once, used when seeding at startup
	BulkAdd(ctx context.Context, ids []int64) error
}
