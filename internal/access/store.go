package access

import (
	"context"
	"time"

	"github.com/danghoanh/cinevault/internal/audit"
)

// Repository is the persistent account store.
//
// The mutating methods accept the activity entry to append so the
// account change and its audit record commit in one transaction.
type Repository interface {
	ListAccounts(context context.Context, limit, offset int) ([]*Account, int, error)
	GetAccount(context context.Context, username string) (*Account, error)

	CreateAccount(context context.Context, account *Account, entry *audit.UserActivityEntry) error
	UpdateStatus(context context.Context, username, status string, entry *audit.UserActivityEntry) error
	UpdateRole(context context.Context, username, role string, entry *audit.UserActivityEntry) error

	// DeleteAccount removes the account. It fails with an invariant
	// violation when the target is the last active admin.
	DeleteAccount(context context.Context, username string, entry *audit.UserActivityEntry) error

	// TouchLastLogin stamps the account's last successful login.
	TouchLastLogin(context context.Context, username string) error

	// RecordActivity appends a standalone activity entry (login events).
	RecordActivity(context context.Context, entry *audit.UserActivityEntry) error
}

// SessionStore holds refresh sessions keyed by hashed token.
type SessionStore interface {
	Save(context context.Context, tokenHash, username string, ttl time.Duration) error
	Resolve(context context.Context, tokenHash string) (string, error)
	Delete(context context.Context, tokenHash string) error
}

// TokenProvider issues signed access tokens. Satisfied by [sec.TokenService].
type TokenProvider interface {
	GenerateAccessToken(username, role string, timeToLive time.Duration) (string, error)
}
