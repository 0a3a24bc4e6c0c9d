// goudace | 2026
// entity.go

package user

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goudace/shop-backend/internal/auth"
)

type User struct {
	ID               string      `db:"id"`
	Email            string      `db:"email"`
	Name             string      `db:"name"`
	PasswordHash     string      `db:"password_hash"`
	Permissions      Permissions `db:"permissions"`
	ResetToken       *string     `db:"reset_token"`
	ResetTokenExpiry *time.Time  `db:"reset_token_expiry"`
	CreatedAt        time.Time   `db:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Permissions.Has(auth.PermissionAdmin)
}

// Permissions is the user's ordered set of permission labels, stored as a
// jsonb column. A user always carries at least one label.
type Permissions []string

func (p Permissions) Has(label string) bool {
	for _, existing := range p {
		if existing == label {
			return true
		}
	}
	return false
}

func (p Permissions) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *Permissions) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = nil
		return nil
	default:
		return fmt.Errorf("permissions: unsupported scan type %T", src)
	}
}
