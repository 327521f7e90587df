package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tips-service/internal/models"
	"tips-service/pkg/response"
)

type AuthHandler struct {
	authService AuthService
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register godoc
// @Summary Register a new user
// @Description Register with username, email and password; returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "User registration data"
// @Success 201 {object} models.LoginResponse "User registered successfully"
// @Failure 400 {object} response.ErrorResponse "Email or username already registered"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid input data", err.Error())
		return
	}

	result, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			response.Error(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		response.Error(c, http.StatusInternalServerError, "register failed", "")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login godoc
// @Summary Login to your profile
// @Description Authenticate with email and password; sessions last one hour
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "User login credentials"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {object} response.ErrorResponse "User not found"
// @Failure 401 {object} response.ErrorResponse "Wrong password"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid input data", err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, err.Error(), "")
		default:
			response.Error(c, http.StatusInternalServerError, "login failed", "")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
