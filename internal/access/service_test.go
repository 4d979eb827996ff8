package access_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/access"
	"github.com/danghoanh/cinevault/internal/audit"
	"github.com/danghoanh/cinevault/internal/platform/apperr"
	"github.com/danghoanh/cinevault/internal/platform/dberr"
	"github.com/danghoanh/cinevault/internal/platform/sec"
)

// ── Fakes ─────────────────────────────────────────────────────────────────

type fakeRepository struct {
	accounts   map[string]*access.Account
	created    *access.Account
	createdLog *audit.UserActivityEntry
	deleted    string
	deletedLog *audit.UserActivityEntry
	touched    []string
	activities []*audit.UserActivityEntry
}

func newFakeRepository(accounts ...*access.Account) *fakeRepository {
	repo := &fakeRepository{accounts: map[string]*access.Account{}}
	for _, account := range accounts {
		repo.accounts[account.Username] = account
	}
	return repo
}

func (f *fakeRepository) ListAccounts(ctx context.Context, limit, offset int) ([]*access.Account, int, error) {
	return nil, 0, nil
}
func (f *fakeRepository) GetAccount(ctx context.Context, username string) (*access.Account, error) {
	account, ok := f.accounts[username]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return account, nil
}
func (f *fakeRepository) CreateAccount(ctx context.Context, account *access.Account, entry *audit.UserActivityEntry) error {
	f.created = account
	f.createdLog = entry
	return nil
}
func (f *fakeRepository) UpdateStatus(ctx context.Context, username, status string, entry *audit.UserActivityEntry) error {
	return nil
}
func (f *fakeRepository) UpdateRole(ctx context.Context, username, role string, entry *audit.UserActivityEntry) error {
	return nil
}
func (f *fakeRepository) DeleteAccount(ctx context.Context, username string, entry *audit.UserActivityEntry) error {
	if username == "last.admin" {
		return apperr.Invariant("Cannot delete the last active admin")
	}
	f.deleted = username
	f.deletedLog = entry
	return nil
}
func (f *fakeRepository) TouchLastLogin(ctx context.Context, username string) error {
	f.touched = append(f.touched, username)
	return nil
}
func (f *fakeRepository) RecordActivity(ctx context.Context, entry *audit.UserActivityEntry) error {
	f.activities = append(f.activities, entry)
	return nil
}

type fakeSessions struct {
	saved   map[string]string
	deleted []string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{saved: map[string]string{}}
}

func (f *fakeSessions) Save(ctx context.Context, tokenHash, username string, ttl time.Duration) error {
	f.saved[tokenHash] = username
	return nil
}
func (f *fakeSessions) Resolve(ctx context.Context, tokenHash string) (string, error) {
	username, ok := f.saved[tokenHash]
	if !ok {
		return "", apperr.Unauthorized("Refresh session expired or revoked")
	}
	return username, nil
}
func (f *fakeSessions) Delete(ctx context.Context, tokenHash string) error {
	delete(f.saved, tokenHash)
	f.deleted = append(f.deleted, tokenHash)
	return nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(username, role string, ttl time.Duration) (string, error) {
	return "signed-token-for-" + username, nil
}

// ── Fixtures ──────────────────────────────────────────────────────────────

func activeAccount(t *testing.T, username, role, password string) *access.Account {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	return &access.Account{
		Username:     username,
		PasswordHash: hash,
		FullName:     "Test User",
		Email:        username + "@cinevault.app",
		Role:         role,
		Status:       access.StatusActive,
	}
}

func newTestService(repo access.Repository, sessions access.SessionStore) *access.Service {
	return access.NewService(repo, sessions, fakeTokens{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// ── Authentication ────────────────────────────────────────────────────────

/*
TestAuthenticate covers the three authorization decisions.
*/
func TestAuthenticate(t *testing.T) {
	active := activeAccount(t, "linh", string(sec.RoleViewer), "password-123")
	suspended := activeAccount(t, "dormant", string(sec.RoleViewer), "password-123")
	suspended.Status = access.StatusSuspended

	repo := newFakeRepository(active, suspended)
	service := newTestService(repo, newFakeSessions())

	decision, err := service.Authenticate(context.Background(), "linh")
	require.NoError(t, err)
	assert.Equal(t, access.DecisionAuthorized, decision)

	decision, err = service.Authenticate(context.Background(), "dormant")
	require.NoError(t, err)
	assert.Equal(t, access.DecisionInactive, decision)

	decision, err = service.Authenticate(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, access.DecisionNotFound, decision)
}

/*
TestLogin_Success issues a token pair and records the attempt.
*/
func TestLogin_Success(t *testing.T) {
	repo := newFakeRepository(activeAccount(t, "linh", string(sec.RoleManager), "password-123"))
	sessions := newFakeSessions()
	service := newTestService(repo, sessions)

	pair, err := service.Login(context.Background(), "linh", "password-123", "203.0.113.7")
	require.NoError(t, err)

	assert.Equal(t, "signed-token-for-linh", pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	// The refresh session is stored under the token's hash, never the raw value.
	assert.Equal(t, "linh", sessions.saved[sec.HashToken(pair.RefreshToken)])
	assert.NotContains(t, sessions.saved, pair.RefreshToken)

	assert.Equal(t, []string{"linh"}, repo.touched)
	require.Len(t, repo.activities, 1)
	assert.Equal(t, audit.ActionLoginSuccess, repo.activities[0].Action)
	assert.Equal(t, "203.0.113.7", repo.activities[0].IPAddress)
}

/*
TestLogin_Failures covers the rejection paths and their activity entries.
*/
func TestLogin_Failures(t *testing.T) {
	suspended := activeAccount(t, "dormant", string(sec.RoleViewer), "password-123")
	suspended.Status = access.StatusSuspended

	tests := []struct {
		name     string
		username string
		password string
		wantCode string
	}{
		{"unknown_username", "ghost", "password-123", "UNAUTHORIZED"},
		{"wrong_password", "linh", "not-the-password", "UNAUTHORIZED"},
		{"suspended_account", "dormant", "password-123", "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository(
				activeAccount(t, "linh", string(sec.RoleViewer), "password-123"),
				suspended,
			)
			sessions := newFakeSessions()
			service := newTestService(repo, sessions)

			pair, err := service.Login(context.Background(), tt.username, tt.password, "203.0.113.7")

			require.Error(t, err)
			assert.True(t, apperr.IsCode(err, tt.wantCode))
			assert.Nil(t, pair)
			assert.Empty(t, sessions.saved)

			require.Len(t, repo.activities, 1)
			assert.Equal(t, audit.ActionLoginFailed, repo.activities[0].Action)
		})
	}
}

/*
TestRefresh_RotatesSession revokes the spent session before issuing a new one.
*/
func TestRefresh_RotatesSession(t *testing.T) {
	repo := newFakeRepository(activeAccount(t, "linh", string(sec.RoleViewer), "password-123"))
	sessions := newFakeSessions()
	service := newTestService(repo, sessions)

	first, err := service.Login(context.Background(), "linh", "password-123", "203.0.113.7")
	require.NoError(t, err)

	second, err := service.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)

	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotContains(t, sessions.saved, sec.HashToken(first.RefreshToken))
	assert.Equal(t, "linh", sessions.saved[sec.HashToken(second.RefreshToken)])

	// Replaying the spent token must fail.
	_, err = service.Refresh(context.Background(), first.RefreshToken)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "UNAUTHORIZED"))
}

/*
TestRefresh_SuspendedAccount refuses rotation once the account is inactive.
*/
func TestRefresh_SuspendedAccount(t *testing.T) {
	account := activeAccount(t, "linh", string(sec.RoleViewer), "password-123")
	repo := newFakeRepository(account)
	sessions := newFakeSessions()
	service := newTestService(repo, sessions)

	pair, err := service.Login(context.Background(), "linh", "password-123", "203.0.113.7")
	require.NoError(t, err)

	account.Status = access.StatusSuspended

	_, err = service.Refresh(context.Background(), pair.RefreshToken)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "FORBIDDEN"))
}

// ── User administration ───────────────────────────────────────────────────

/*
TestAdministration_RequiresActiveAdmin re-resolves the caller from the
store, so a demoted or suspended admin is locked out immediately.
*/
func TestAdministration_RequiresActiveAdmin(t *testing.T) {
	suspendedAdmin := activeAccount(t, "old.admin", string(sec.RoleAdmin), "password-123")
	suspendedAdmin.Status = access.StatusSuspended

	tests := []struct {
		name   string
		caller string
	}{
		{"manager", "boss"},
		{"viewer", "reader"},
		{"suspended_admin", "old.admin"},
		{"deleted_caller", "ghost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository(
				activeAccount(t, "boss", string(sec.RoleManager), "password-123"),
				activeAccount(t, "reader", string(sec.RoleViewer), "password-123"),
				suspendedAdmin,
			)
			service := newTestService(repo, newFakeSessions())

			err := service.CreateUser(context.Background(), tt.caller, &access.Account{
				Username: "new.user",
				FullName: "New User",
				Email:    "new.user@cinevault.app",
				Role:     string(sec.RoleViewer),
			}, "password-123")

			require.Error(t, err)
			assert.True(t, apperr.IsCode(err, "FORBIDDEN"))
			assert.Nil(t, repo.created)

			_, _, err = service.ListUsers(context.Background(), tt.caller, 20, 0)
			assert.True(t, apperr.IsCode(err, "FORBIDDEN"))
		})
	}
}

/*
TestCreateUser_Success hashes the password and stamps provenance.
*/
func TestCreateUser_Success(t *testing.T) {
	repo := newFakeRepository(activeAccount(t, "root", string(sec.RoleAdmin), "password-123"))
	service := newTestService(repo, newFakeSessions())

	err := service.CreateUser(context.Background(), "root", &access.Account{
		Username: "new.manager",
		FullName: "New Manager",
		Email:    "new.manager@cinevault.app",
		Role:     string(sec.RoleManager),
	}, "a-strong-password")
	require.NoError(t, err)

	require.NotNil(t, repo.created)
	assert.True(t, sec.CheckPasswordHash("a-strong-password", repo.created.PasswordHash))
	assert.Equal(t, "root", repo.created.CreatedBy)
	assert.Equal(t, access.StatusActive, repo.created.Status)

	require.NotNil(t, repo.createdLog)
	assert.Equal(t, audit.ActionUserCreated, repo.createdLog.Action)
	assert.Equal(t, "new.manager", repo.createdLog.Username)
}

/*
TestCreateUser_Validation covers the field guards.
*/
func TestCreateUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*access.Account)
		password string
	}{
		{"short_username", func(a *access.Account) { a.Username = "ab" }, "a-strong-password"},
		{"missing_full_name", func(a *access.Account) { a.FullName = "" }, "a-strong-password"},
		{"bad_email", func(a *access.Account) { a.Email = "not-an-email" }, "a-strong-password"},
		{"unknown_role", func(a *access.Account) { a.Role = "superuser" }, "a-strong-password"},
		{"short_password", func(a *access.Account) {}, "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository(activeAccount(t, "root", string(sec.RoleAdmin), "password-123"))
			service := newTestService(repo, newFakeSessions())

			account := &access.Account{
				Username: "new.user",
				FullName: "New User",
				Email:    "new.user@cinevault.app",
				Role:     string(sec.RoleViewer),
			}
			tt.mutate(account)

			err := service.CreateUser(context.Background(), "root", account, tt.password)

			require.Error(t, err)
			assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
			assert.Nil(t, repo.created)
		})
	}
}

/*
TestDeleteUser_LastAdminGuard surfaces the store's invariant violation.
*/
func TestDeleteUser_LastAdminGuard(t *testing.T) {
	repo := newFakeRepository(activeAccount(t, "root", string(sec.RoleAdmin), "password-123"))
	service := newTestService(repo, newFakeSessions())

	err := service.DeleteUser(context.Background(), "root", "last.admin")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, "INVARIANT_VIOLATION"))
}

/*
TestDeleteUser_Success records who removed the account.
*/
func TestDeleteUser_Success(t *testing.T) {
	repo := newFakeRepository(activeAccount(t, "root", string(sec.RoleAdmin), "password-123"))
	service := newTestService(repo, newFakeSessions())

	require.NoError(t, service.DeleteUser(context.Background(), "root", "leaver"))
	assert.Equal(t, "leaver", repo.deleted)

	require.NotNil(t, repo.deletedLog)
	assert.Equal(t, audit.ActionUserDeleted, repo.deletedLog.Action)
	assert.Contains(t, repo.deletedLog.Detail, "root")
}
