// goudace | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goudace/shop-backend/internal/core"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSuchUser         = errors.New("no such user")
	ErrResetTokenInvalid  = errors.New("reset token is invalid or expired")
)

// resetTokenWindow bounds how recently a reset token must have been issued.
// The lookup matches tokens whose stored expiry is within the last hour
// (expiry >= now - window), not the more obvious now <= expiry check; the
// stored expiry doubles as the issuance marker.
const resetTokenWindow = time.Hour

type UserRecord struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Permissions  []string
	CreatedAt    time.Time
}

type UserStore interface {
	Create(
		ctx context.Context,
		email, passwordHash, name string,
	) (*UserRecord, error)
	GetByID(ctx context.Context, id string) (*UserRecord, error)
	GetByEmail(ctx context.Context, email string) (*UserRecord, error)
	SetResetToken(
		ctx context.Context,
		userID, token string,
		expiry time.Time,
	) error
	// ConsumeResetToken atomically swaps the password hash and clears the
	// reset token on the single user whose stored token matches and whose
	// expiry is at or after cutoff. Returns core.ErrNotFound when no row
	// matches, which makes the token single-use without a read-then-write
	// race.
	ConsumeResetToken(
		ctx context.Context,
		token, newPasswordHash string,
		cutoff time.Time,
	) (*UserRecord, error)
}

type SessionIssuer interface {
	Issue(userID string) (string, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type Service struct {
	users       UserStore
	sessions    SessionIssuer
	mailer      Mailer
	frontendURL string
}

func NewService(
	users UserStore,
	sessions SessionIssuer,
	mailer Mailer,
	frontendURL string,
) *Service {
	return &Service{
		users:       users,
		sessions:    sessions,
		mailer:      mailer,
		frontendURL: frontendURL,
	}
}

// Signup creates the account with the USER permission and opens a session.
func (s *Service) Signup(
	ctx context.Context,
	req SignupRequest,
) (*UserRecord, string, error) {
	if req.Password != req.ConfirmPassword {
		return nil, "", fmt.Errorf(
			"signup: passwords do not match: %w",
			core.ErrInvalidInput,
		)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	record, err := s.users.Create(
		ctx,
		strings.ToLower(req.Email),
		passwordHash,
		req.Name,
	)
	if err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.sessions.Issue(record.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	return record, token, nil
}

func (s *Service) Signin(
	ctx context.Context,
	email, password string,
) (*UserRecord, string, error) {
	record, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(password, nil)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	valid, _, err := core.VerifyPasswordTimingSafe(
		password,
		&record.PasswordHash,
	)
	if err != nil {
		return nil, "", fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(record.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	return record, token, nil
}

func (s *Service) Me(ctx context.Context, identity *Identity) (*UserRecord, error) {
	if identity == nil {
		return nil, nil
	}

	record, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return record, nil
}

// RequestReset issues a fresh single-use reset token valid for one hour and
// mails the reset link. Delivery failure does not invalidate the token: the
// persistence already committed, so the failure is logged and swallowed.
func (s *Service) RequestReset(ctx context.Context, email string) error {
	record, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return fmt.Errorf("request reset: %w", ErrNoSuchUser)
		}
		return fmt.Errorf("get user: %w", err)
	}

	token, err := core.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	expiry := time.Now().Add(resetTokenWindow)
	if err := s.users.SetResetToken(ctx, record.ID, token, expiry); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset?resetToken=%s", s.frontendURL, token)
	body := fmt.Sprintf(
		`Your password reset link: <a href="%s">Click me!</a>`,
		link,
	)

	if err := s.mailer.Send(ctx, record.Email, "Password reset request", body); err != nil {
		slog.Error("reset email delivery failed",
			"error", err,
			"user_id", record.ID,
		)
	}

	return nil
}

// ResetPassword consumes a reset token, rotates the credential and opens a
// fresh session for the updated account.
func (s *Service) ResetPassword(
	ctx context.Context,
	req ResetPasswordRequest,
) (*UserRecord, string, error) {
	if req.Password != req.ConfirmPassword {
		return nil, "", fmt.Errorf(
			"reset password: passwords do not match: %w",
			core.ErrInvalidInput,
		)
	}

	if req.ResetToken == "" {
		return nil, "", fmt.Errorf(
			"reset password: no reset token provided: %w",
			core.ErrInvalidInput,
		)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	cutoff := time.Now().Add(-resetTokenWindow)
	record, err := s.users.ConsumeResetToken(
		ctx,
		req.ResetToken,
		passwordHash,
		cutoff,
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, "", ErrResetTokenInvalid
		}
		return nil, "", fmt.Errorf("consume reset token: %w", err)
	}

	token, err := s.sessions.Issue(record.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	return record, token, nil
}
