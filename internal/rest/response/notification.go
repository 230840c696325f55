package response

import "github.com/Guyuepp/Go-Clean-Architecture-Social/domain"

type Notification struct {
	ID        int64  `json:"id"`
	ActorID   int64  `json:"actor_id"`
	Verb      string `json:"verb"`
	TargetID  int64  `json:"target_id"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`

	Actor *User `json:"actor,omitempty"`
}

// NewNotificationFromDomain: Domain -> Response
func NewNotificationFromDomain(n *domain.Notification) Notification {
	return Notification{
		ID:        n.ID,
		ActorID:   n.ActorID,
		Verb:      n.Verb,
		TargetID:  n.TargetID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(DateTimeFormat),
		Actor:     NewUserFromDomain(n.Actor),
	}
}
