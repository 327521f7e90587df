package post

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tips-service/internal/models"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	List(ctx context.Context, q models.ListPostsQuery) ([]*models.Post, error)
	SearchByLocation(ctx context.Context, location string) ([]*models.Post, error)
	// UpdateOwned overwrites the tip fields of a post the owner holds,
	// returning the number of rows touched.
	UpdateOwned(ctx context.Context, postID, ownerID uint, req *models.UpdatePostRequest) (int64, error)
	// DeleteOwned removes an owned post and reverses its accumulated
	// helpful-count contribution to the owner's reputation; both writes
	// commit together or not at all. Returns gorm.ErrRecordNotFound when the
	// post is absent or owned by someone else.
	DeleteOwned(ctx context.Context, postID, ownerID uint) error
}

// Whitelisted ORDER BY clauses, keyed by the public sort parameter.
var allowedSortOptions = map[string]string{
	models.SortHelpfulCountAsc:  "helpful_count ASC",
	models.SortHelpfulCountDesc: "helpful_count DESC",
	models.SortCreatedAtAsc:     "created_at ASC",
	models.SortCreatedAtDesc:    "created_at DESC",
}

func orderClause(sort string) string {
	if clause, ok := allowedSortOptions[sort]; ok {
		return clause
	}
	return "created_at DESC"
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) List(ctx context.Context, q models.ListPostsQuery) ([]*models.Post, error) {
	query := r.db.WithContext(ctx).Model(&models.Post{}).Order(orderClause(q.Sort))

	paginate := true
	switch {
	case len(q.IDs) > 0:
		// Explicit id lookups return the whole batch.
		query = query.Where("posts.id IN ?", q.IDs)
		paginate = false
	case q.Username != "":
		query = query.
			Joins("JOIN users ON users.id = posts.user_id").
			Where("users.username = ?", q.Username)
	case q.UserID != 0:
		query = query.Where("posts.user_id = ?", q.UserID)
	}

	if paginate {
		offset := (q.Page - 1) * q.Limit
		query = query.Limit(q.Limit).Offset(offset)
	}

	var posts []*models.Post
	err := query.Find(&posts).Error
	return posts, err
}

func (r *postRepository) SearchByLocation(ctx context.Context, location string) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Where("LOWER(location) LIKE LOWER(?)", "%"+location+"%").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) UpdateOwned(ctx context.Context, postID, ownerID uint, req *models.UpdatePostRequest) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND user_id = ?", postID, ownerID).
		Updates(map[string]interface{}{
			"location":             req.Location,
			"must_visit":           req.MustVisit,
			"must_avoid":           req.MustAvoid,
			"food_recommendations": req.FoodRecommendations,
			"money_tips":           req.MoneyTips,
			"norms":                req.Norms,
			"extra_tips":           req.ExtraTips,
		})
	return res.RowsAffected, res.Error
}

func (r *postRepository) DeleteOwned(ctx context.Context, postID, ownerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "user_id", "helpful_count").
			First(&post, "id = ? AND user_id = ?", postID, ownerID).Error
		if err != nil {
			return err
		}

		if err := tx.Delete(&models.Post{}, "id = ?", postID).Error; err != nil {
			return err
		}

		if post.HelpfulCount == 0 {
			return nil
		}

		// Deleting a post takes its votes out of the world, so the owner's
		// reputation gives back exactly what those votes contributed.
		return tx.Model(&models.User{}).
			Where("id = ?", ownerID).
			UpdateColumn("reputation", gorm.Expr("reputation - ?", post.HelpfulCount)).Error
	})
}
