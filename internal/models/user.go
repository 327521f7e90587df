package models

import (
	"time"

	"gorm.io/gorm"
)

/** --------------------ENTITIES-------------------- */
// User represents the user entity
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"` // Username for the user
	Email    string `gorm:"uniqueIndex;not null" json:"email"`    // Unique email for the user
	Password string `json:"-"`                                    // Password is hashed and not returned in responses
	Name     string `json:"name,omitempty"`
	Country  string `json:"country,omitempty"`
	Bio      string `json:"bio,omitempty"`

	// HelpfulPosts and UnhelpfulPosts are the user's two vote sets. A post id
	// lives in at most one of them at any time.
	HelpfulPosts   PostIDSet `gorm:"type:json" json:"helpfulPosts"`
	UnhelpfulPosts PostIDSet `gorm:"type:json" json:"unhelpfulPosts"`

	// Reputation is the net helpfulness of the posts this user owns. It moves
	// only with vote transitions on those posts and may go negative.
	Reputation int `gorm:"not null;default:0" json:"reputation"`
}

/** -------------------- DTOs -------------------- */
// Request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the editable profile fields. All three are
// required, matching the profile form.
type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
	Bio     string `json:"bio" binding:"required"`
}

// Response
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse represents the response for a successful login
// swagger:model
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserProfileResponse is the public projection of a user. Email and vote sets
// stay private.
type UserProfileResponse struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	Country    string `json:"country"`
	Bio        string `json:"bio"`
	Reputation int    `json:"reputation"`
}
