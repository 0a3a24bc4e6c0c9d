// goudace | 2026
// service_test.go

package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goudace/shop-backend/internal/auth"
	"github.com/goudace/shop-backend/internal/core"
)

type fakeRepository struct {
	byID map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[string]*User{}}
}

func (f *fakeRepository) Create(_ context.Context, u *User) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return core.ErrDuplicateKey
		}
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepository) GetByEmail(
	_ context.Context,
	email string,
) (*User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeRepository) List(_ context.Context) ([]User, error) {
	users := make([]User, 0, len(f.byID))
	for _, u := range f.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeRepository) UpdatePermissions(
	_ context.Context,
	id string,
	perms Permissions,
) error {
	u, ok := f.byID[id]
	if !ok {
		return core.ErrNotFound
	}
	u.Permissions = perms
	return nil
}

func (f *fakeRepository) SetResetToken(
	_ context.Context,
	userID, token string,
	expiry time.Time,
) error {
	u, ok := f.byID[userID]
	if !ok {
		return core.ErrNotFound
	}
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
	return nil
}

func (f *fakeRepository) ConsumeResetToken(
	_ context.Context,
	token, newPasswordHash string,
	cutoff time.Time,
) (*User, error) {
	for _, u := range f.byID {
		if u.ResetToken != nil && *u.ResetToken == token &&
			u.ResetTokenExpiry != nil && !u.ResetTokenExpiry.Before(cutoff) {
			u.PasswordHash = newPasswordHash
			u.ResetToken = nil
			u.ResetTokenExpiry = nil
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

func adminIdentity() *auth.Identity {
	return &auth.Identity{
		UserID:      "admin-1",
		Permissions: []string{auth.PermissionAdmin},
	}
}

func TestCreateAssignsUserPermission(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepository())

	record, err := svc.Create(
		context.Background(),
		"User@Example.com",
		"hash",
		"Test User",
	)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", record.Email)
	assert.Equal(t, []string{auth.PermissionUser}, record.Permissions)
	assert.NotEmpty(t, record.ID)
}

func TestListUsersRequiresAdmin(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepository())

	_, err := svc.ListUsers(context.Background(), nil)
	assert.ErrorIs(t, err, core.ErrUnauthorized)

	_, err = svc.ListUsers(context.Background(), &auth.Identity{
		UserID:      "user-1",
		Permissions: []string{auth.PermissionUser},
	})
	assert.ErrorIs(t, err, core.ErrForbidden)

	_, err = svc.ListUsers(context.Background(), adminIdentity())
	assert.NoError(t, err)
}

func TestUpdatePermissions(t *testing.T) {
	t.Parallel()

	repo := newFakeRepository()
	svc := NewService(repo)

	record, err := svc.Create(
		context.Background(),
		"user@example.com",
		"hash",
		"Test User",
	)
	require.NoError(t, err)

	updated, err := svc.UpdatePermissions(
		context.Background(),
		adminIdentity(),
		record.ID,
		[]string{auth.PermissionUser, auth.PermissionAdmin},
	)
	require.NoError(t, err)
	assert.True(t, updated.Permissions.Has(auth.PermissionAdmin))
}

func TestUpdatePermissionsValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepository())

	_, err := svc.UpdatePermissions(
		context.Background(),
		adminIdentity(),
		"user-1",
		nil,
	)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = svc.UpdatePermissions(
		context.Background(),
		adminIdentity(),
		"user-1",
		[]string{"SUPERUSER"},
	)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
