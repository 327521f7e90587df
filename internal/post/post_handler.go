package post

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tips-service/internal/models"
	"tips-service/pkg/response"
)

type PostHandler struct {
	postService PostService
}

func NewPostHandler(postService PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create godoc
// @Summary Create a new post
// @Description Share travel tips for a location
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePostRequest true "Post fields"
// @Success 201 {object} models.PostResponse "Post created successfully"
// @Failure 400 {object} response.ErrorResponse "Invalid data"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid data", err.Error())
		return
	}

	post, err := h.postService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to create post", "")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// List godoc
// @Summary Get posts
// @Description List posts by ids, username or user_id, or all posts; paginated and sortable
// @Tags posts
// @Produce json
// @Param ids query string false "Comma-separated post IDs"
// @Param username query string false "Filter by author username"
// @Param user_id query int false "Filter by author id"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param sort query string false "Sort order" Enums(helpful_count_asc, helpful_count_desc, created_at_asc, created_at_desc)
// @Success 200 {object} models.PaginatedPostsResponse "List of posts"
// @Failure 400 {object} response.ErrorResponse "Invalid ids provided"
// @Failure 404 {object} response.ErrorResponse "No posts found"
// @Router /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	q := models.ListPostsQuery{
		Username: c.Query("username"),
		Page:     intQuery(c, "page", 1),
		Limit:    intQuery(c, "limit", 10),
		Sort:     c.Query("sort"),
	}

	if raw := c.Query("ids"); raw != "" {
		ids := parseIDList(raw)
		if len(ids) == 0 {
			response.Error(c, http.StatusBadRequest, "invalid ids provided", "")
			return
		}
		q.IDs = ids
	}

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "invalid user_id", "")
			return
		}
		q.UserID = uint(id)
	}

	posts, err := h.postService.List(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrNoPostsFound) {
			response.Error(c, http.StatusNotFound, err.Error(), "")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	// Batch id lookups return the plain list; everything else is paginated.
	if len(q.IDs) > 0 {
		c.JSON(http.StatusOK, posts)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedPostsResponse{
		Page:  q.Page,
		Limit: q.Limit,
		Posts: posts,
	})
}

// SearchByLocation godoc
// @Summary Search posts by location
// @Tags posts
// @Produce json
// @Param location query string true "Location substring"
// @Success 200 {array} models.PostResponse "List of posts"
// @Failure 400 {object} response.ErrorResponse "Missing location parameter"
// @Failure 404 {object} response.ErrorResponse "No posts found"
// @Router /posts/search/location [get]
func (h *PostHandler) SearchByLocation(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		response.Error(c, http.StatusBadRequest, "please provide location query parameter", "")
		return
	}

	posts, err := h.postService.SearchByLocation(c.Request.Context(), location)
	if err != nil {
		if errors.Is(err, ErrNoPostsFound) {
			response.Error(c, http.StatusNotFound, err.Error(), "")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Update godoc
// @Summary Update your post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body models.UpdatePostRequest true "Post fields"
// @Success 200 {object} response.MessageResponse "Post updated"
// @Failure 403 {object} response.ErrorResponse "Not authorized or post not found"
// @Router /posts/{id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id", "")
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid data", err.Error())
		return
	}

	if err := h.postService.Update(c.Request.Context(), uint(postID), userID, &req); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.Error(c, http.StatusForbidden, err.Error(), "")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	response.Message(c, http.StatusOK, "Post updated")
}

// Delete godoc
// @Summary Delete your post
// @Description Delete an owned post; its helpful-count contribution is removed from your reputation
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} response.MessageResponse "Post deleted successfully"
// @Failure 403 {object} response.ErrorResponse "Not authorized or post not found"
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id", "")
		return
	}

	if err := h.postService.Delete(c.Request.Context(), uint(postID), userID); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			response.Error(c, http.StatusForbidden, err.Error(), "")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	response.Message(c, http.StatusOK, "Post deleted successfully")
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func parseIDList(raw string) []uint {
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
		if err != nil || id == 0 {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}
