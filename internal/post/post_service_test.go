package post

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tips-service/internal/models"
)

type fakePostRepo struct {
	posts     map[uint]*models.Post
	nextID    uint
	lastQuery models.ListPostsQuery
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint]*models.Post), nextID: 1}
}

func (r *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	post.ID = r.nextID
	r.nextID++
	r.posts[post.ID] = post
	return nil
}

func (r *fakePostRepo) List(ctx context.Context, q models.ListPostsQuery) ([]*models.Post, error) {
	r.lastQuery = q

	var out []*models.Post
	for _, p := range r.posts {
		switch {
		case len(q.IDs) > 0:
			for _, id := range q.IDs {
				if p.ID == id {
					out = append(out, p)
				}
			}
		case q.UserID != 0:
			if p.UserID == q.UserID {
				out = append(out, p)
			}
		default:
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) SearchByLocation(ctx context.Context, location string) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range r.posts {
		if strings.Contains(strings.ToLower(p.Location), strings.ToLower(location)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) UpdateOwned(ctx context.Context, postID, ownerID uint, req *models.UpdatePostRequest) (int64, error) {
	p, ok := r.posts[postID]
	if !ok || p.UserID != ownerID {
		return 0, nil
	}
	p.Location = req.Location
	p.MustVisit = req.MustVisit
	return 1, nil
}

func (r *fakePostRepo) DeleteOwned(ctx context.Context, postID, ownerID uint) error {
	p, ok := r.posts[postID]
	if !ok || p.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	delete(r.posts, postID)
	return nil
}

func TestPostCreate(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	resp, err := svc.Create(context.Background(), 5, &models.CreatePostRequest{
		Location:  "Lisbon",
		MustVisit: "Alfama",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), resp.UserID)
	assert.Equal(t, "Lisbon", resp.Location)
	assert.Zero(t, resp.HelpfulCount)
	assert.Contains(t, repo.posts, resp.ID)
}

func TestPostListDefaultsPagination(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	require.NoError(t, repo.Create(context.Background(), &models.Post{UserID: 1, Location: "Hanoi"}))

	_, err := svc.List(context.Background(), models.ListPostsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.lastQuery.Page)
	assert.Equal(t, 10, repo.lastQuery.Limit)
}

func TestPostListEmpty(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	_, err := svc.List(context.Background(), models.ListPostsQuery{})
	assert.ErrorIs(t, err, ErrNoPostsFound)
}

func TestPostListByIDs(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: 1, Location: "Hanoi"}))
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: 1, Location: "Hue"}))

	resp, err := svc.List(ctx, models.ListPostsQuery{IDs: []uint{2}})
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Hue", resp[0].Location)
}

func TestPostSearchByLocation(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: 1, Location: "Buenos Aires"}))

	resp, err := svc.SearchByLocation(ctx, "buenos")
	require.NoError(t, err)
	assert.Len(t, resp, 1)

	_, err = svc.SearchByLocation(ctx, "atlantis")
	assert.ErrorIs(t, err, ErrNoPostsFound)
}

func TestPostUpdateOwnership(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: 1, Location: "Hanoi"}))

	req := &models.UpdatePostRequest{Location: "Ha Long"}
	require.NoError(t, svc.Update(ctx, 1, 1, req))
	assert.Equal(t, "Ha Long", repo.posts[1].Location)

	// Someone else's post looks like a missing post
	err := svc.Update(ctx, 1, 2, req)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPostDelete(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Post{UserID: 1, Location: "Hanoi"}))

	err := svc.Delete(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Contains(t, repo.posts, uint(1))

	require.NoError(t, svc.Delete(ctx, 1, 1))
	assert.NotContains(t, repo.posts, uint(1))
}
