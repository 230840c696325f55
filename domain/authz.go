package domain

// Action is the closed set of intents the authorization gate decides on.
type Action int8

const (
	ActionRead Action = iota
	ActionCreate
	ActionUpdate
	ActionDelete
	ActionFollow
	ActionLike
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	case ActionFollow:
		return "follow"
	case ActionLike:
		return "like"
	default:
		return "unknown"
	}
}

// Owned is any entity with a single owning user. Posts and comments are
// owned by their author, a user is owned by themselves.
type Owned interface {
	OwnerID() int64
}

// OwnerID implements Owned for Post.
func (p Post) OwnerID() int64 { return p.User.ID }

// OwnerID implements Owned for Comment.
func (c Comment) OwnerID() int64 { return c.UserID }

// OwnerID implements Owned for User.
func (u User) OwnerID() int64 { return u.ID }

// Authorizer is the single gate consulted before every mutation. It is a
// pure decision function: nil means allow, otherwise one of
// ErrUnauthenticated, ErrForbidden or ErrInvalidOperation explains the
// deny. It never panics and has no side effects.
type Authorizer interface {
	Authorize(actorID int64, action Action, target Owned) error
}
