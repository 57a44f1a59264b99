package user

import (
	"context"
	"errors"
	"time"

	"github.com/jsaurabh334/PanditJii/internal/auth"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNothingToUpdate    = errors.New("no fields to update")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	GetByID(ctx context.Context, userID int) (*User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*User, error)
	ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error
	ListPandits(ctx context.Context) ([]User, error)
	SetAvailability(ctx context.Context, panditID int, dates []time.Time) error
	GetAvailability(ctx context.Context, panditID int) ([]time.Time, error)

	// Admin surface.
	ListUsers(ctx context.Context) ([]User, error)
	ToggleStatus(ctx context.Context, userID int) (*User, error)
	UpdateRole(ctx context.Context, userID int, role string) (*User, error)
	Approve(ctx context.Context, userID int, approved bool) (*User, error)
	DeleteUser(ctx context.Context, userID int) error
	Counts(ctx context.Context) (*RoleCounts, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", err
	}
	if exists {
		return nil, "", "", ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	role := req.Role
	if role == "" {
		role = auth.RoleUser
	}

	u, err := s.repo.Create(ctx, req.Name, req.Email, req.Phone, passwordHash, role)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return u, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	if u.IsSuspended {
		return nil, "", "", ErrAccountSuspended
	}

	accessToken, refreshToken, err := auth.GenerateTokens(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return u, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, userID int) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	newAccessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	return newAccessToken, u, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*User, error) {
	if req.Name == nil && req.Phone == nil {
		return nil, ErrNothingToUpdate
	}
	return s.repo.UpdateProfile(ctx, userID, req.Name, req.Phone)
}

func (s *service) ChangePassword(ctx context.Context, userID int, currentPassword, newPassword string) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(u.PasswordHash, currentPassword) {
		return ErrWrongPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, hash)
}

func (s *service) ListPandits(ctx context.Context) ([]User, error) {
	return s.repo.ListByRole(ctx, auth.RolePandit)
}

func (s *service) SetAvailability(ctx context.Context, panditID int, dates []time.Time) error {
	return s.repo.SetAvailability(ctx, panditID, dates)
}

func (s *service) GetAvailability(ctx context.Context, panditID int) ([]time.Time, error) {
	return s.repo.GetAvailability(ctx, panditID)
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ToggleStatus(ctx context.Context, userID int) (*User, error) {
	return s.repo.ToggleSuspended(ctx, userID)
}

func (s *service) UpdateRole(ctx context.Context, userID int, role string) (*User, error) {
	switch role {
	case auth.RoleUser, auth.RoleAdmin, auth.RoleVendor, auth.RolePandit:
	default:
		return nil, ErrInvalidRole
	}
	return s.repo.SetRole(ctx, userID, role)
}

func (s *service) Approve(ctx context.Context, userID int, approved bool) (*User, error) {
	return s.repo.SetApproved(ctx, userID, approved)
}

func (s *service) DeleteUser(ctx context.Context, userID int) error {
	return s.repo.Delete(ctx, userID)
}

func (s *service) Counts(ctx context.Context) (*RoleCounts, error) {
	return s.repo.Counts(ctx)
}
