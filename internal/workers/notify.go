package workers

import (
	"context"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/sirupsen/logrus"
)

const (
	notifyQueueSize  = 1024
	notifyBatchSize  = 100
	notifyFlushEvery = 1 * time.Second
)

// notifyWorker drains like notifications off the request path and appends
// them to the ledger in batches. The queue is bounded, an overflow drops
// the event and logs it instead of blocking a request.
type notifyWorker struct {
	notificationRepo domain.NotificationRepository
	ch               chan domain.Notification
}

var _ domain.NotifyWorker = (*notifyWorker)(nil)

func NewNotifyWorker(repo domain.NotificationRepository) *notifyWorker {
	return &notifyWorker{
		notificationRepo: repo,
		ch:               make(chan domain.Notification, notifyQueueSize),
	}
}

// Send enqueues a notification, it never blocks
func (w *notifyWorker) Send(n domain.Notification) {
	select {
	case w.ch <- n:
	default:
		logrus.Warnf("notify worker queue is full, notification for user %d dropped", n.RecipientID)
	}
}

func (w *notifyWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(notifyFlushEvery)
	defer ticker.Stop()

	batch := make([]domain.Notification, 0, notifyBatchSize)
	for {
		select {
		case n := <-w.ch:
			batch = append(batch, n)
			if len(batch) == notifyBatchSize {
				w.flush(ctx, batch)
				batch = make([]domain.Notification, 0, notifyBatchSize)
			}
		case <-ticker.C:
			w.flush(ctx, batch)
			batch = make([]domain.Notification, 0, notifyBatchSize)
		case <-ctx.Done():
			logrus.Info("shutting down notify worker, flushing remaining notifications...")
			w.drain(&batch)
			w.flush(context.Background(), batch)
			return
		}
	}
}

// drain empties whatever is still queued into the final batch
func (w *notifyWorker) drain(batch *[]domain.Notification) {
	for {
		select {
		case n := <-w.ch:
			*batch = append(*batch, n)
		default:
			return
		}
	}
}

func (w *notifyWorker) flush(ctx context.Context, batch []domain.Notification) {
	if len(batch) == 0 {
		return
	}
	if err := w.notificationRepo.BatchStore(ctx, batch); err != nil {
		logrus.Errorf("failed to flush %d notifications: %v", len(batch), err)
	}
}
