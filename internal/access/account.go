// Package access manages user accounts, authentication, and the
// administrative operations gated behind the admin role.
//
// # Architecture
//
// Every administrative mutation resolves the caller's own account first
// and refuses anything but an active admin, regardless of what the HTTP
// middleware already checked. The mutation and its activity entry
// commit in the same transaction.
//
// Login issues a short-lived RS256 access token plus a redis-backed
// refresh session; refresh tokens are stored hashed and rotated on use.
package access

import "time"

// Account statuses.
const (
	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"
)

// Statuses lists every valid account status.
var Statuses = []string{StatusActive, StatusSuspended}

// Account represents a user of the platform, keyed by username.
//
// PasswordHash never leaves the server; it is excluded from every JSON
// rendering of the account.
type Account struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	CreatedBy    string     `json:"created_by"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Active reports whether the account may authenticate and act.
func (a *Account) Active() bool {
	return a.Status == StatusActive
}

// AuthDecision is the outcome of resolving a username for authentication.
type AuthDecision string

const (
	DecisionAuthorized AuthDecision = "AUTHORIZED"
	DecisionNotFound   AuthDecision = "NOT_FOUND"
	DecisionInactive   AuthDecision = "INACTIVE"
)

// TokenPair is the credential set issued on a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Global field names for validation
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldRole     = "role"
	FieldStatus   = "status"
)
