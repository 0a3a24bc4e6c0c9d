// goudace | 2026
// service.go

package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(
	ctx context.Context,
	email, passwordHash, name string,
) (*auth.UserRecord, error) {
	entity := &User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(email),
		Name:         name,
		PasswordHash: passwordHash,
		Permissions:  Permissions{auth.PermissionUser},
	}

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}

	return toRecord(entity), nil
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserRecord, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toRecord(entity), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserRecord, error) {
	entity, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toRecord(entity), nil
}

func (s *Service) SetResetToken(
	ctx context.Context,
	userID, token string,
	expiry time.Time,
) error {
	return s.repo.SetResetToken(ctx, userID, token, expiry)
}

func (s *Service) ConsumeResetToken(
	ctx context.Context,
	token, newPasswordHash string,
	cutoff time.Time,
) (*auth.UserRecord, error) {
	entity, err := s.repo.ConsumeResetToken(ctx, token, newPasswordHash, cutoff)
	if err != nil {
		return nil, err
	}

	return toRecord(entity), nil
}

// IdentityByID resolves the per-request identity from a verified session
// token's subject.
func (s *Service) IdentityByID(
	ctx context.Context,
	id string,
) (*auth.Identity, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &auth.Identity{
		UserID:      entity.ID,
		Email:       entity.Email,
		Permissions: entity.Permissions,
	}, nil
}

// ListUsers is an admin operation.
func (s *Service) ListUsers(
	ctx context.Context,
	identity *auth.Identity,
) ([]User, error) {
	if err := auth.RequirePermission(identity, auth.PermissionAdmin); err != nil {
		return nil, err
	}

	return s.repo.List(ctx)
}

// UpdatePermissions replaces the target user's permission set. Admin only;
// the new set must be non-empty and drawn from the known labels so a user
// never ends up without any permission.
func (s *Service) UpdatePermissions(
	ctx context.Context,
	identity *auth.Identity,
	targetID string,
	perms []string,
) (*User, error) {
	if err := auth.RequirePermission(identity, auth.PermissionAdmin); err != nil {
		return nil, err
	}

	if err := validatePermissions(perms); err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePermissions(ctx, targetID, Permissions(perms)); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, targetID)
}

func validatePermissions(perms []string) error {
	if len(perms) == 0 {
		return fmt.Errorf(
			"update permissions: permission set cannot be empty: %w",
			core.ErrInvalidInput,
		)
	}

	for _, label := range perms {
		known := false
		for _, candidate := range auth.KnownPermissions {
			if label == candidate {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf(
				"update permissions: unknown permission %q: %w",
				label,
				core.ErrInvalidInput,
			)
		}
	}

	return nil
}

func toRecord(u *User) *auth.UserRecord {
	return &auth.UserRecord{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Permissions:  u.Permissions,
		CreatedAt:    u.CreatedAt,
	}
}

var _ auth.UserStore = (*Service)(nil)
