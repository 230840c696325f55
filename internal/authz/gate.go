package authz

import (
	"github.com/Guyuepp/Go-Clean-Architecture-Social/domain"
)

// Gate is the single ownership/role check consulted before every mutating
// operation. Decisions are pure: the gate never touches storage, callers
// load the target entity first and hand it in.
type Gate struct{}

var _ domain.Authorizer = (*Gate)(nil)

func NewGate() *Gate {
	return &Gate{}
}

// Authorize decides whether actorID may perform action on target.
// actorID == 0 means anonymous. A nil target is only meaningful for
// actions that don't address an existing entity (read listings, create).
func (g *Gate) Authorize(actorID int64, action domain.Action, target domain.Owned) error {
	switch action {
	case domain.ActionRead:
		// posts and comments are public
		return nil

	case domain.ActionCreate:
		if actorID == 0 {
			return domain.ErrUnauthenticated
		}
		return nil

	case domain.ActionUpdate, domain.ActionDelete:
		if actorID == 0 {
			return domain.ErrUnauthenticated
		}
		if target == nil || target.OwnerID() != actorID {
			return domain.ErrForbidden
		}
		return nil

	case domain.ActionFollow:
		if actorID == 0 {
			return domain.ErrUnauthenticated
		}
		if target != nil && target.OwnerID() == actorID {
			// a user can never follow themselves
			return domain.ErrInvalidOperation
		}
		return nil

	case domain.ActionLike:
		// no ownership restriction, liking your own post is allowed
		if actorID == 0 {
			return domain.ErrUnauthenticated
		}
		return nil

	default:
		return domain.ErrInvalidOperation
	}
}
