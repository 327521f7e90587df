package post

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tips-service/internal/models"
)

// Custom errors
var (
	ErrNoPostsFound = errors.New("no posts found")
	ErrPostNotFound = errors.New("not authorized or post not found")
)

type PostService interface {
	Create(ctx context.Context, ownerID uint, req *models.CreatePostRequest) (*models.PostResponse, error)
	List(ctx context.Context, q models.ListPostsQuery) ([]models.PostResponse, error)
	SearchByLocation(ctx context.Context, location string) ([]models.PostResponse, error)
	Update(ctx context.Context, postID, ownerID uint, req *models.UpdatePostRequest) error
	Delete(ctx context.Context, postID, ownerID uint) error
}

type postService struct {
	repo PostRepository
}

func NewPostService(repo PostRepository) PostService {
	return &postService{repo: repo}
}

func (s *postService) Create(ctx context.Context, ownerID uint, req *models.CreatePostRequest) (*models.PostResponse, error) {
	post := &models.Post{
		UserID:              ownerID,
		Location:            req.Location,
		MustVisit:           req.MustVisit,
		MustAvoid:           req.MustAvoid,
		FoodRecommendations: req.FoodRecommendations,
		MoneyTips:           req.MoneyTips,
		Norms:               req.Norms,
		ExtraTips:           req.ExtraTips,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	resp := models.NewPostResponse(post)
	return &resp, nil
}

func (s *postService) List(ctx context.Context, q models.ListPostsQuery) ([]models.PostResponse, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	posts, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNoPostsFound
	}

	return postResponses(posts), nil
}

func (s *postService) SearchByLocation(ctx context.Context, location string) ([]models.PostResponse, error) {
	posts, err := s.repo.SearchByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNoPostsFound
	}

	return postResponses(posts), nil
}

func (s *postService) Update(ctx context.Context, postID, ownerID uint, req *models.UpdatePostRequest) error {
	rows, err := s.repo.UpdateOwned(ctx, postID, ownerID, req)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *postService) Delete(ctx context.Context, postID, ownerID uint) error {
	if err := s.repo.DeleteOwned(ctx, postID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

func postResponses(posts []*models.Post) []models.PostResponse {
	out := make([]models.PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, models.NewPostResponse(p))
	}
	return out
}
