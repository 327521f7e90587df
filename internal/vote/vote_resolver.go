package vote

import (
	"errors"

	"tips-service/internal/models"
)

// Action is a requested vote operation on a post.
type Action string

const (
	ActionHelpful   Action = "helpful"
	ActionUnhelpful Action = "unhelpful"
	ActionUnvote    Action = "unvote"
)

// Resolver errors
var (
	ErrAlreadyVoted   = errors.New("post already voted in that direction")
	ErrNoExistingVote = errors.New("post has not been voted on by user")
	ErrUnknownAction  = errors.New("unknown vote action")
)

// Transition is the outcome of resolving a vote action: the user's new vote
// sets plus the signed delta to apply to both the post's helpful counter and
// the owner's reputation.
type Transition struct {
	Helpful    models.PostIDSet
	Unhelpful  models.PostIDSet
	CountDelta int
}

// Resolve maps the user's current vote sets and a requested action on postID
// to new vote sets and a counter delta. It performs no I/O and never mutates
// its inputs.
//
// Switching direction in one step moves the counter by two: one to take the
// old vote back, one to cast the new one.
func Resolve(helpful, unhelpful models.PostIDSet, postID uint, action Action) (Transition, error) {
	h := helpful.Clone()
	u := unhelpful.Clone()
	var delta int

	switch action {
	case ActionHelpful:
		if h.Contains(postID) {
			return Transition{}, ErrAlreadyVoted
		}
		delta = 1
		if u.Contains(postID) {
			u.Remove(postID)
			delta = 2
		}
		h.Add(postID)

	case ActionUnhelpful:
		if u.Contains(postID) {
			return Transition{}, ErrAlreadyVoted
		}
		delta = -1
		if h.Contains(postID) {
			h.Remove(postID)
			delta = -2
		}
		u.Add(postID)

	case ActionUnvote:
		switch {
		case h.Contains(postID):
			h.Remove(postID)
			delta = -1
		case u.Contains(postID):
			u.Remove(postID)
			delta = 1
		default:
			return Transition{}, ErrNoExistingVote
		}

	default:
		return Transition{}, ErrUnknownAction
	}

	return Transition{Helpful: h, Unhelpful: u, CountDelta: delta}, nil
}
