// goudace | 2026
// session.go

package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/goudace/shop-backend/internal/config"
	"github.com/goudace/shop-backend/internal/core"
)

// Manager issues and verifies the signed session token carried by the
// HTTP-only cookie. Tokens hold only the user identifier and issuance time;
// the cookie's lifetime is the session's lifetime, and a fresh token is issued
// on every signin, signup and password reset.
type Manager struct {
	key    jwk.Key
	config config.SessionConfig
}

func NewManager(cfg config.SessionConfig) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("session: secret is required")
	}

	key, err := jwk.Import([]byte(cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("import session key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &Manager{key: key, config: cfg}, nil
}

func (m *Manager) Issue(userID string) (string, error) {
	token, err := jwt.NewBuilder().
		Issuer(m.config.Issuer).
		Subject(userID).
		IssuedAt(time.Now()).
		Build()
	if err != nil {
		return "", fmt.Errorf("build session token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return string(signed), nil
}

func (m *Manager) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
	)
	if err != nil {
		return "", fmt.Errorf("verify session token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return "", fmt.Errorf(
			"verify session token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	return subject, nil
}

func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.config.CookieTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) CookieName() string {
	return m.config.CookieName
}
