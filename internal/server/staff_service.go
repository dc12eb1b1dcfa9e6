package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marisol/talentdesk/internal/config"
	"github.com/marisol/talentdesk/internal/db"
	"github.com/marisol/talentdesk/internal/types"
)

// StaffStore is the subset of the database layer the staff service needs.
type StaffStore interface {
	CreateStaffUser(ctx context.Context, u *db.StaffUser) (*db.StaffUser, error)
	GetStaffUser(ctx context.Context, id uuid.UUID) (*db.StaffUser, error)
	GetStaffUserByEmail(ctx context.Context, email string) (*db.StaffUser, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// StaffService provides business logic for staff authentication operations.
type StaffService struct {
	db             StaffStore
	passwordConfig *config.PasswordConfig
}

// NewStaffService creates a new StaffService with the given dependencies.
func NewStaffService(db StaffStore, passwordConfig *config.PasswordConfig) *StaffService {
	return &StaffService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// toTypesStaffUser converts db.StaffUser to types.StaffUser, excluding the
// password hash.
func toTypesStaffUser(u *db.StaffUser) *types.StaffUser {
	if u == nil {
		return nil
	}
	return &types.StaffUser{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Title:       u.Title,
		Department:  u.Department,
		PasswordSet: u.PasswordSet,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// Register creates a new staff account with password authentication.
func (s *StaffService) Register(ctx context.Context, req *types.RegisterRequest) (*types.StaffUser, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.db.CreateStaffUser(ctx, &db.StaffUser{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Title:        req.Title,
		Department:   req.Department,
		PasswordHash: passwordHash,
		PasswordSet:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create staff account: %w", err)
	}

	return toTypesStaffUser(created), nil
}

// Login authenticates a staff account.
func (s *StaffService) Login(ctx context.Context, req *types.LoginRequest) (*types.StaffUser, error) {
	user, err := s.db.GetStaffUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff account by email: %w", err)
	}

	// Unknown email and wrong password produce the same error so a caller
	// cannot probe which addresses are registered.
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !user.PasswordSet {
		// Accounts provisioned by the identity webhook have no local
		// password until one is set.
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toTypesStaffUser(user), nil
}

// UpdatePassword changes a staff account's password after verifying the
// current one.
func (s *StaffService) UpdatePassword(ctx context.Context, staffID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.db.GetStaffUser(ctx, staffID)
	if err != nil {
		return fmt.Errorf("failed to get staff account: %w", err)
	}
	if user == nil {
		return &ErrStaffNotFound{StaffID: staffID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, user.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.db.UpdatePassword(ctx, staffID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
