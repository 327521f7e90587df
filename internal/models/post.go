package models

import (
	"time"

	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// Post represents a travel tip post
type Post struct {
	gorm.Model
	UserID              uint   `gorm:"not null;index" json:"userId"` // Owner, never changed by voting
	Location            string `gorm:"not null;index" json:"location"`
	MustVisit           string `json:"mustVisit,omitempty"`
	MustAvoid           string `json:"mustAvoid,omitempty"`
	FoodRecommendations string `json:"foodRecommendations,omitempty"`
	MoneyTips           string `json:"moneyTips,omitempty"`
	Norms               string `json:"norms,omitempty"`
	ExtraTips           string `json:"extraTips,omitempty"`

	// HelpfulCount is the net helpful-vote counter. Only the vote engine
	// writes it.
	HelpfulCount int `gorm:"not null;default:0" json:"helpfulCount"`
}

// Sort options accepted by the post listing endpoints. Anything else falls
// back to newest-first.
const (
	SortHelpfulCountAsc  = "helpful_count_asc"
	SortHelpfulCountDesc = "helpful_count_desc"
	SortCreatedAtAsc     = "created_at_asc"
	SortCreatedAtDesc    = "created_at_desc"
)

/** -------------------- DTOs -------------------- */
// Request
type CreatePostRequest struct {
	Location            string `json:"location" binding:"required"`
	MustVisit           string `json:"must_visit"`
	MustAvoid           string `json:"must_avoid"`
	FoodRecommendations string `json:"food_recommendations"`
	MoneyTips           string `json:"money_tips"`
	Norms               string `json:"norms"`
	ExtraTips           string `json:"extra_tips"`
}

// UpdatePostRequest overwrites the tip fields of an owned post.
type UpdatePostRequest struct {
	Location            string `json:"location" binding:"required"`
	MustVisit           string `json:"must_visit"`
	MustAvoid           string `json:"must_avoid"`
	FoodRecommendations string `json:"food_recommendations"`
	MoneyTips           string `json:"money_tips"`
	Norms               string `json:"norms"`
	ExtraTips           string `json:"extra_tips"`
}

// ListPostsQuery captures the filter/pagination/sort parameters of GET /posts.
type ListPostsQuery struct {
	IDs      []uint
	Username string
	UserID   uint
	Page     int
	Limit    int
	Sort     string
}

// Response
type PostResponse struct {
	ID                  uint      `json:"id"`
	UserID              uint      `json:"user_id"`
	Location            string    `json:"location"`
	MustVisit           string    `json:"must_visit,omitempty"`
	MustAvoid           string    `json:"must_avoid,omitempty"`
	FoodRecommendations string    `json:"food_recommendations,omitempty"`
	MoneyTips           string    `json:"money_tips,omitempty"`
	Norms               string    `json:"norms,omitempty"`
	ExtraTips           string    `json:"extra_tips,omitempty"`
	HelpfulCount        int       `json:"helpful_count"`
	CreatedAt           time.Time `json:"created_at"`
}

// PaginatedPostsResponse wraps a page of posts.
type PaginatedPostsResponse struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Posts []PostResponse `json:"posts"`
}

// NewPostResponse maps a Post entity to its API projection.
func NewPostResponse(p *Post) PostResponse {
	return PostResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		Location:            p.Location,
		MustVisit:           p.MustVisit,
		MustAvoid:           p.MustAvoid,
		FoodRecommendations: p.FoodRecommendations,
		MoneyTips:           p.MoneyTips,
		Norms:               p.Norms,
		ExtraTips:           p.ExtraTips,
		HelpfulCount:        p.HelpfulCount,
		CreatedAt:           p.CreatedAt,
	}
}
