// goudace | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goudace/shop-backend/internal/core"
)

type storedUser struct {
	record      UserRecord
	resetToken  string
	resetExpiry time.Time
}

type fakeUserStore struct {
	byEmail   map[string]*storedUser
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*storedUser{}}
}

func (f *fakeUserStore) add(id, email, passwordHash string) *storedUser {
	u := &storedUser{
		record: UserRecord{
			ID:           id,
			Email:        email,
			Name:         "Test User",
			PasswordHash: passwordHash,
			Permissions:  []string{PermissionUser},
		},
	}
	f.byEmail[email] = u
	return u
}

func (f *fakeUserStore) Create(
	_ context.Context,
	email, passwordHash, _ string,
) (*UserRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[email]; ok {
		return nil, core.ErrDuplicateKey
	}
	u := f.add("user-"+email, email, passwordHash)
	return &u.record, nil
}

func (f *fakeUserStore) GetByID(
	_ context.Context,
	id string,
) (*UserRecord, error) {
	for _, u := range f.byEmail {
		if u.record.ID == id {
			return &u.record, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(
	_ context.Context,
	email string,
) (*UserRecord, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &u.record, nil
}

func (f *fakeUserStore) SetResetToken(
	_ context.Context,
	userID, token string,
	expiry time.Time,
) error {
	for _, u := range f.byEmail {
		if u.record.ID == userID {
			u.resetToken = token
			u.resetExpiry = expiry
			return nil
		}
	}
	return core.ErrNotFound
}

func (f *fakeUserStore) ConsumeResetToken(
	_ context.Context,
	token, newPasswordHash string,
	cutoff time.Time,
) (*UserRecord, error) {
	for _, u := range f.byEmail {
		if u.resetToken == token && u.resetToken != "" &&
			!u.resetExpiry.Before(cutoff) {
			u.record.PasswordHash = newPasswordHash
			u.resetToken = ""
			u.resetExpiry = time.Time{}
			return &u.record, nil
		}
	}
	return nil, core.ErrNotFound
}

type fakeSessionIssuer struct{}

func (fakeSessionIssuer) Issue(userID string) (string, error) {
	return "session-" + userID, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	err  error
	sent []sentMail
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func newTestService(store *fakeUserStore, mailer *fakeMailer) *Service {
	return NewService(store, fakeSessionIssuer{}, mailer, "http://localhost:3000")
}

func TestSignup(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestService(store, &fakeMailer{})

	record, token, err := svc.Signup(context.Background(), SignupRequest{
		Email:           "New@Example.COM",
		Name:            "New User",
		Password:        "correct horse",
		ConfirmPassword: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", record.Email)
	assert.Equal(t, []string{PermissionUser}, record.Permissions)
	assert.NotEmpty(t, token)

	valid, err := core.VerifyPassword("correct horse", record.PasswordHash)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestSignupPasswordMismatch(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserStore(), &fakeMailer{})

	_, _, err := svc.Signup(context.Background(), SignupRequest{
		Email:           "new@example.com",
		Name:            "New User",
		Password:        "one password",
		ConfirmPassword: "another password",
	})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestSignin(t *testing.T) {
	t.Parallel()

	hash, err := core.HashPassword("correct horse")
	require.NoError(t, err)

	store := newFakeUserStore()
	store.add("user-1", "user@example.com", hash)
	svc := newTestService(store, &fakeMailer{})

	record, token, err := svc.Signin(
		context.Background(),
		"User@Example.com",
		"correct horse",
	)
	require.NoError(t, err)
	assert.Equal(t, "user-1", record.ID)
	assert.Equal(t, "session-user-1", token)

	_, _, err = svc.Signin(
		context.Background(),
		"user@example.com",
		"wrong password",
	)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Signin(
		context.Background(),
		"nobody@example.com",
		"correct horse",
	)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMeAnonymous(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserStore(), &fakeMailer{})

	record, err := svc.Me(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestRequestReset(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	u := store.add("user-1", "user@example.com", "hash")
	mailer := &fakeMailer{}
	svc := newTestService(store, mailer)

	err := svc.RequestReset(context.Background(), "user@example.com")
	require.NoError(t, err)

	// 20 random bytes, hex encoded.
	assert.Len(t, u.resetToken, 40)
	assert.WithinDuration(t, time.Now().Add(time.Hour), u.resetExpiry, time.Minute)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "user@example.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, u.resetToken)
}

func TestRequestResetUnknownEmail(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserStore(), &fakeMailer{})

	err := svc.RequestReset(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoSuchUser)
}

func TestRequestResetMailFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	u := store.add("user-1", "user@example.com", "hash")
	svc := newTestService(store, &fakeMailer{err: errors.New("smtp down")})

	err := svc.RequestReset(context.Background(), "user@example.com")
	require.NoError(t, err)

	// The token survives even though the mail never went out.
	assert.NotEmpty(t, u.resetToken)
}

func TestResetPassword(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	u := store.add("user-1", "user@example.com", "old-hash")
	u.resetToken = "valid-token"
	u.resetExpiry = time.Now().Add(time.Hour)

	svc := newTestService(store, &fakeMailer{})

	record, token, err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		ResetToken:      "valid-token",
		Password:        "brand new pass",
		ConfirmPassword: "brand new pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", record.ID)
	assert.Equal(t, "session-user-1", token)

	valid, err := core.VerifyPassword("brand new pass", record.PasswordHash)
	require.NoError(t, err)
	assert.True(t, valid)

	// Single use: the same token cannot be consumed twice.
	_, _, err = svc.ResetPassword(context.Background(), ResetPasswordRequest{
		ResetToken:      "valid-token",
		Password:        "brand new pass",
		ConfirmPassword: "brand new pass",
	})
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	u := store.add("user-1", "user@example.com", "old-hash")
	u.resetToken = "stale-token"
	u.resetExpiry = time.Now().Add(-2 * time.Hour)

	svc := newTestService(store, &fakeMailer{})

	_, _, err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		ResetToken:      "stale-token",
		Password:        "brand new pass",
		ConfirmPassword: "brand new pass",
	})
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
}

func TestResetPasswordValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeUserStore(), &fakeMailer{})

	_, _, err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		ResetToken:      "whatever",
		Password:        "one password",
		ConfirmPassword: "another password",
	})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, _, err = svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Password:        "brand new pass",
		ConfirmPassword: "brand new pass",
	})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
