package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// Coordinator errors. Any error returned by ApplyVote means no state changed.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrTransactionFailed = errors.New("vote transaction failed")
)

type VoteService interface {
	// ApplyVote runs one vote transition for the acting user against postID.
	// The user's vote sets, the post's helpful counter and the owner's
	// reputation move together or not at all.
	ApplyVote(ctx context.Context, actingUserID, postID uint, action Action) (string, error)
}

type voteService struct {
	repo VoteRepository
}

func NewVoteService(repo VoteRepository) VoteService {
	return &voteService{repo: repo}
}

func (s *voteService) ApplyVote(ctx context.Context, actingUserID, postID uint, action Action) (string, error) {
	err := s.repo.Transact(ctx, func(tx VoteTx) error {
		helpful, unhelpful, err := tx.UserVoteSets(ctx, actingUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		transition, err := Resolve(helpful, unhelpful, postID, action)
		if err != nil {
			return err
		}

		// The owner is read before the counter update so the reputation
		// write targets the owner as of this transaction.
		ownerID, err := tx.PostOwner(ctx, postID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := tx.AddHelpfulCount(ctx, postID, transition.CountDelta); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := tx.SaveUserVoteSets(ctx, actingUserID, transition.Helpful, transition.Unhelpful); err != nil {
			return err
		}

		return tx.AddReputation(ctx, ownerID, transition.CountDelta)
	})
	if err != nil {
		if isVoteError(err) {
			return "", err
		}
		slog.Error("vote transaction aborted",
			"user_id", actingUserID,
			"post_id", postID,
			"action", action,
			"error", err)
		return "", ErrTransactionFailed
	}

	return fmt.Sprintf("%s action processed successfully", action), nil
}

func isVoteError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrAlreadyVoted) ||
		errors.Is(err, ErrNoExistingVote) ||
		errors.Is(err, ErrUnknownAction)
}
