package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tips-service/internal/models"
	"tips-service/pkg/response"
)

type UserHandler struct {
	userService UserService
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateProfile godoc
// @Summary Update your profile
// @Description Set name, country and a short bio on the authenticated account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} response.MessageResponse "Profile updated successfully"
// @Failure 400 {object} response.ErrorResponse "Missing required fields"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "missing required fields", err.Error())
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, err.Error(), "")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	response.Message(c, http.StatusOK, "Profile updated successfully")
}

// Search godoc
// @Summary Search users
// @Description Search other users by username, name or country
// @Tags users
// @Produce json
// @Param username query string false "Username substring"
// @Param name query string false "Name substring"
// @Param country query string false "Country substring"
// @Success 200 {array} models.UserProfileResponse "List of matching users"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.userService.Search(
		c.Request.Context(),
		c.Query("username"),
		c.Query("name"),
		c.Query("country"),
	)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetProfile godoc
// @Summary Get a user profile by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.UserProfileResponse "User profile data"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /users/{username} [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, err.Error(), "")
			return
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", "")
		return
	}

	c.JSON(http.StatusOK, profile)
}
