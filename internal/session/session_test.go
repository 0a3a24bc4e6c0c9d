// goudace | 2026
// session_test.go

package session

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goudace/shop-backend/internal/config"
	"github.com/goudace/shop-backend/internal/core"
)

func testConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:     "test-secret-which-is-long-enough",
		CookieName: "token",
		CookieTTL:  364 * 24 * time.Hour,
		Issuer:     "goudace-shop",
	}
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	m, err := NewManager(testConfig())
	require.NoError(t, err)

	token, err := m.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-42", userID)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer, err := NewManager(config.SessionConfig{
		Secret:     "secret-one-that-signs-the-token1",
		CookieName: "token",
		Issuer:     "goudace-shop",
	})
	require.NoError(t, err)

	verifier, err := NewManager(config.SessionConfig{
		Secret:     "secret-two-that-does-not-match2",
		CookieName: "token",
		Issuer:     "goudace-shop",
	})
	require.NoError(t, err)

	token, err := issuer.Issue("user-1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m, err := NewManager(testConfig())
	require.NoError(t, err)

	_, err = m.Verify("not.a.token")
	require.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestNewManager_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := NewManager(config.SessionConfig{CookieName: "token"})
	require.Error(t, err)
}

func TestCookieLifecycle(t *testing.T) {
	t.Parallel()

	m, err := NewManager(testConfig())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.SetCookie(rec, "signed-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "token", cookies[0].Name)
	require.Equal(t, "signed-token", cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, int(364*24*time.Hour/time.Second), cookies[0].MaxAge)

	rec = httptest.NewRecorder()
	m.ClearCookie(rec)

	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}

func TestVerify_EmptyToken(t *testing.T) {
	t.Parallel()

	m, err := NewManager(testConfig())
	require.NoError(t, err)

	_, err = m.Verify("")
	require.True(t, errors.Is(err, core.ErrTokenInvalid))
}
