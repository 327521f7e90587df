package vote

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tips-service/internal/models"
)

// VoteTx is the set of record operations available inside one vote
// transaction. Reads must take row locks so that concurrent transactions
// touching the same user or post serialize instead of interleaving.
// Lookups on absent rows return gorm.ErrRecordNotFound.
type VoteTx interface {
	// UserVoteSets loads and locks the acting user's vote sets.
	UserVoteSets(ctx context.Context, userID uint) (helpful, unhelpful models.PostIDSet, err error)
	// PostOwner loads and locks the post row, returning its owner id.
	PostOwner(ctx context.Context, postID uint) (uint, error)
	// AddHelpfulCount applies delta to the post's helpful counter. Zero rows
	// affected means the post vanished mid-transaction and reports
	// gorm.ErrRecordNotFound.
	AddHelpfulCount(ctx context.Context, postID uint, delta int) error
	// SaveUserVoteSets persists the user's new vote sets.
	SaveUserVoteSets(ctx context.Context, userID uint, helpful, unhelpful models.PostIDSet) error
	// AddReputation applies delta to a user's reputation.
	AddReputation(ctx context.Context, userID uint, delta int) error
}

// VoteRepository runs vote transactions. Transact commits when fn returns
// nil and rolls back otherwise; fn's error comes back unchanged.
type VoteRepository interface {
	Transact(ctx context.Context, fn func(tx VoteTx) error) error
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Transact(ctx context.Context, fn func(tx VoteTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&voteTx{db: tx})
	})
}

type voteTx struct {
	db *gorm.DB
}

func (t *voteTx) UserVoteSets(ctx context.Context, userID uint) (models.PostIDSet, models.PostIDSet, error) {
	var user models.User
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "helpful_posts", "unhelpful_posts").
		First(&user, "id = ?", userID).Error
	if err != nil {
		return nil, nil, err
	}
	return user.HelpfulPosts, user.UnhelpfulPosts, nil
}

func (t *voteTx) PostOwner(ctx context.Context, postID uint) (uint, error) {
	var post models.Post
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "user_id").
		First(&post, "id = ?", postID).Error
	if err != nil {
		return 0, err
	}
	return post.UserID, nil
}

func (t *voteTx) AddHelpfulCount(ctx context.Context, postID uint, delta int) error {
	res := t.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (t *voteTx) SaveUserVoteSets(ctx context.Context, userID uint, helpful, unhelpful models.PostIDSet) error {
	return t.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumns(map[string]interface{}{
			"helpful_posts":   helpful,
			"unhelpful_posts": unhelpful,
		}).Error
}

func (t *voteTx) AddReputation(ctx context.Context, userID uint, delta int) error {
	return t.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("reputation", gorm.Expr("reputation + ?", delta)).Error
}
