package vote

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tips-service/pkg/response"
)

type VoteHandler struct {
	voteService VoteService
}

func NewVoteHandler(voteService VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// MarkHelpful godoc
// @Summary Mark a post as helpful
// @Description Mark a post as helpful; switching from unhelpful in one step is allowed
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} response.MessageResponse "Post marked as helpful"
// @Failure 400 {object} response.ErrorResponse "Already marked as helpful"
// @Failure 404 {object} response.ErrorResponse "Post or user not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /posts/{id}/helpful [post]
func (h *VoteHandler) MarkHelpful(c *gin.Context) {
	h.apply(c, ActionHelpful)
}

// MarkUnhelpful godoc
// @Summary Mark a post as unhelpful
// @Description Mark a post as unhelpful; switching from helpful in one step is allowed
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} response.MessageResponse "Post marked as unhelpful"
// @Failure 400 {object} response.ErrorResponse "Already marked as unhelpful"
// @Failure 404 {object} response.ErrorResponse "Post or user not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /posts/{id}/unhelpful [post]
func (h *VoteHandler) MarkUnhelpful(c *gin.Context) {
	h.apply(c, ActionUnhelpful)
}

// Unvote godoc
// @Summary Take back a vote on a post
// @Description Remove the caller's existing helpful or unhelpful vote
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} response.MessageResponse "Post unvoted successfully"
// @Failure 400 {object} response.ErrorResponse "No existing vote"
// @Failure 404 {object} response.ErrorResponse "Post or user not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /posts/{id}/unvote [delete]
func (h *VoteHandler) Unvote(c *gin.Context) {
	h.apply(c, ActionUnvote)
}

func (h *VoteHandler) apply(c *gin.Context, action Action) {
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

	msg, err := h.voteService.ApplyVote(c.Request.Context(), userID, uint(postID), action)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrAlreadyVoted), errors.Is(err, ErrNoExistingVote):
			status = http.StatusBadRequest
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrPostNotFound):
			status = http.StatusNotFound
		}
		response.Error(c, status, err.Error(), "")
		return
	}

	response.Message(c, http.StatusOK, msg)
}

// RegisterRoutes mounts the vote endpoints on the posts group.
func (h *VoteHandler) RegisterRoutes(posts *gin.RouterGroup) {
	posts.POST("/:id/helpful", h.MarkHelpful)
	posts.POST("/:id/unhelpful", h.MarkUnhelpful)
	posts.DELETE("/:id/unvote", h.Unvote)
}
