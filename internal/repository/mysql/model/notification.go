package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

// Notification rows are append-only, the only mutation is flipping Read.
// TargetID is a weak reference, it survives deletion of the target post.
type Notification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	RecipientID int64     `gorm:"column:recipient_id;not null;index"`
	ActorID     int64     `gorm:"column:actor_id;not null"`
	Verb        string    `gorm:"type:varchar(45);not null"`
	TargetID    int64     `gorm:"column:target_id;not null"`
	Read        bool      `gorm:"default:false"`
	CreatedAt   time.Time `gorm:"type:datetime;index"`
}

func (Notification) TableName() string {
	return "notification"
}

func NewNotificationFromDomain(n *domain.Notification) *Notification {
	return &Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		ActorID:     n.ActorID,
		Verb:        n.Verb,
		TargetID:    n.TargetID,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

func (m *Notification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:          m.ID,
		RecipientID: m.RecipientID,
		ActorID:     m.ActorID,
		Verb:        m.Verb,
		TargetID:    m.TargetID,
		Read:        m.Read,
		CreatedAt:   m.CreatedAt,
	}
}
