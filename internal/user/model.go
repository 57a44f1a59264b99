package user

import "time"

type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	IsSuspended  bool      `db:"is_suspended" json:"is_suspended"`
	IsApproved   bool      `db:"is_approved" json:"is_approved"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RoleCounts backs the admin dashboard.
type RoleCounts struct {
	TotalUsers   int `db:"total_users" json:"total_users"`
	TotalVendors int `db:"total_vendors" json:"total_vendors"`
	TotalPandits int `db:"total_pandits" json:"total_pandits"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	// Role is optional; admin accounts are provisioned out of band.
	Role string `json:"role" binding:"omitempty,oneof=user vendor pandit"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AvailabilityRequest struct {
	AvailableDates []string `json:"available_dates" binding:"required"`
}

// UpdateProfileRequest carries a partial update; at least one field must be set.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type ApprovalRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
