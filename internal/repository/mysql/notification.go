package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Social/internal/repository/mysql/model"
)

type notificationRepository struct {
	DB *gorm.DB
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{db}
}

func (m *notificationRepository) Store(ctx context.Context, n *domain.Notification) error {
	notificationModel := model.NewNotificationFromDomain(n)
	err := m.DB.WithContext(ctx).Create(notificationModel).Error
	if err != nil {
		return err
	}
	n.ID = notificationModel.ID
	n.CreatedAt = notificationModel.CreatedAt
	return nil
}

func (m *notificationRepository) BatchStore(ctx context.Context, ns []domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	rows := make([]model.Notification, len(ns))
	for i := range ns {
		rows[i] = *model.NewNotificationFromDomain(&ns[i])
	}

	return m.DB.WithContext(ctx).Create(&rows).Error
}

func (m *notificationRepository) FetchByRecipient(ctx context.Context, recipientID int64, cursor string, limit int64) ([]domain.Notification, error) {
	var rows []model.Notification

	repository.PageVerify(&limit)
	tx := m.DB.WithContext(ctx).Where("recipient_id = ?", recipientID)

	if cursor != "" {
		decodedCursor, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		tx = tx.Where("created_at < ?", decodedCursor)
	}

	err := tx.Order("created_at DESC").Limit(int(limit)).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Notification, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

// MarkRead is scoped to the recipient so a user can never flip someone
// else's notification.
func (m *notificationRepository) MarkRead(ctx context.Context, recipientID, id int64) error {
	result := m.DB.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *notificationRepository) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.Notification{}).
		Where("recipient_id = ? AND `read` = ?", recipientID, false).
		Count(&count).Error
	return count, err
}
