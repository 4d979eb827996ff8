package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danghoanh/cinevault/internal/audit"
	"github.com/danghoanh/cinevault/internal/platform/apperr"
	"github.com/danghoanh/cinevault/internal/platform/constants"
	"github.com/danghoanh/cinevault/internal/platform/dberr"
	"github.com/danghoanh/cinevault/internal/platform/sec"
	"github.com/danghoanh/cinevault/internal/platform/validate"
)

const refreshTokenBytes = 32

type Service struct {
	repo     Repository
	sessions SessionStore
	tokens   TokenProvider
	logger   *slog.Logger
}

func NewService(repo Repository, sessions SessionStore, tokens TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// ── 1. Authentication ─────────────────────────────────────────────────────

// Authenticate resolves a username to an authorization decision without
// touching credentials. Used by operations that need to know whether an
// account may act at all.
func (service *Service) Authenticate(context context.Context, username string) (AuthDecision, error) {
	account, err := service.repo.GetAccount(context, username)
	if errors.Is(err, dberr.ErrNotFound) {
		return DecisionNotFound, nil
	}
	if err != nil {
		return "", err
	}

	if !account.Active() {
		return DecisionInactive, nil
	}
	return DecisionAuthorized, nil
}

// Login verifies the password and issues a token pair. Every attempt,
// successful or not, lands in the activity trail.
func (service *Service) Login(context context.Context, username, password, ipAddress string) (*TokenPair, error) {
	account, err := service.repo.GetAccount(context, username)
	if errors.Is(err, dberr.ErrNotFound) {
		service.recordLoginFailure(context, username, ipAddress, "unknown username")
		return nil, apperr.Unauthorized("Invalid username or password")
	}
	if err != nil {
		return nil, err
	}

	if !account.Active() {
		service.recordLoginFailure(context, username, ipAddress, "account suspended")
		return nil, apperr.Forbidden("Account is suspended")
	}

	if !sec.CheckPasswordHash(password, account.PasswordHash) {
		service.recordLoginFailure(context, username, ipAddress, "wrong password")
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	if err := service.repo.TouchLastLogin(context, username); err != nil {
		return nil, err
	}

	if err := service.repo.RecordActivity(context, &audit.UserActivityEntry{
		Username:  username,
		Action:    audit.ActionLoginSuccess,
		IPAddress: ipAddress,
	}); err != nil {
		return nil, err
	}

	pair, err := service.issueTokens(context, account)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in",
		slog.String("username", username),
		slog.String("role", account.Role),
	)
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
// The spent session is revoked before the new one is issued.
func (service *Service) Refresh(context context.Context, refreshToken string) (*TokenPair, error) {
	tokenHash := sec.HashToken(refreshToken)

	username, err := service.sessions.Resolve(context, tokenHash)
	if err != nil {
		return nil, err
	}

	account, err := service.repo.GetAccount(context, username)
	if err != nil {
		return nil, err
	}
	if !account.Active() {
		return nil, apperr.Forbidden("Account is suspended")
	}

	if err := service.sessions.Delete(context, tokenHash); err != nil {
		return nil, err
	}

	return service.issueTokens(context, account)
}

// Logout revokes the refresh session. The access token simply expires.
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.sessions.Delete(context, sec.HashToken(refreshToken))
}

// ── 2. User administration ────────────────────────────────────────────────

func (service *Service) ListUsers(context context.Context, caller string, limit, offset int) ([]*Account, int, error) {
	if err := service.requireActiveAdmin(context, caller); err != nil {
		return nil, 0, err
	}
	return service.repo.ListAccounts(context, limit, offset)
}

func (service *Service) GetUser(context context.Context, caller, username string) (*Account, error) {
	if err := service.requireActiveAdmin(context, caller); err != nil {
		return nil, err
	}
	return service.repo.GetAccount(context, username)
}

// CreateUser provisions a new account with the given role tier.
func (service *Service) CreateUser(context context.Context, caller string, account *Account, password string) error {
	if err := service.requireActiveAdmin(context, caller); err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.Required(FieldUsername, account.Username).
		MinLen(FieldUsername, account.Username, 3).
		MaxLen(FieldUsername, account.Username, 50)
	validator.Required(FieldFullName, account.FullName).MaxLen(FieldFullName, account.FullName, 200)
	validator.Email(FieldEmail, account.Email)
	validator.MinLen(FieldPassword, password, 8)
	validator.Custom(FieldRole, !sec.UserRole(account.Role).Valid(), "Must be one of: admin, manager, viewer")
	if err := validator.Err(); err != nil {
		return err
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return apperr.Internal(err)
	}
	account.PasswordHash = hash
	account.CreatedBy = caller
	if account.Status == "" {
		account.Status = StatusActive
	}

	entry := &audit.UserActivityEntry{
		Username: account.Username,
		Action:   audit.ActionUserCreated,
		Detail:   fmt.Sprintf("created with role %s by %s", account.Role, caller),
	}
	if err := service.repo.CreateAccount(context, account, entry); err != nil {
		return err
	}

	service.logger.Info("user_created",
		slog.String("username", account.Username),
		slog.String("role", account.Role),
		slog.String("created_by", caller),
	)
	return nil
}

// UpdateStatus suspends or reactivates an account.
func (service *Service) UpdateStatus(context context.Context, caller, username, status string) error {
	if err := service.requireActiveAdmin(context, caller); err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.Required(FieldStatus, status).OneOf(FieldStatus, status, Statuses...)
	if err := validator.Err(); err != nil {
		return err
	}

	entry := &audit.UserActivityEntry{
		Username: username,
		Action:   audit.ActionUserStatusChange,
		Detail:   fmt.Sprintf("status set to %s by %s", status, caller),
	}
	if err := service.repo.UpdateStatus(context, username, status, entry); err != nil {
		return err
	}

	service.logger.Info("user_status_updated",
		slog.String("username", username),
		slog.String("status", status),
		slog.String("changed_by", caller),
	)
	return nil
}

// UpdateRole moves an account to a different role tier.
func (service *Service) UpdateRole(context context.Context, caller, username, role string) error {
	if err := service.requireActiveAdmin(context, caller); err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.Custom(FieldRole, !sec.UserRole(role).Valid(), "Must be one of: admin, manager, viewer")
	if err := validator.Err(); err != nil {
		return err
	}

	entry := &audit.UserActivityEntry{
		Username: username,
		Action:   audit.ActionUserRoleChange,
		Detail:   fmt.Sprintf("role set to %s by %s", role, caller),
	}
	if err := service.repo.UpdateRole(context, username, role, entry); err != nil {
		return err
	}

	service.logger.Info("user_role_updated",
		slog.String("username", username),
		slog.String("role", role),
		slog.String("changed_by", caller),
	)
	return nil
}

// DeleteUser removes an account. Deleting the last active admin is
// refused by the store inside the delete transaction.
func (service *Service) DeleteUser(context context.Context, caller, username string) error {
	if err := service.requireActiveAdmin(context, caller); err != nil {
		return err
	}

	entry := &audit.UserActivityEntry{
		Username: username,
		Action:   audit.ActionUserDeleted,
		Detail:   fmt.Sprintf("deleted by %s", caller),
	}
	if err := service.repo.DeleteAccount(context, username, entry); err != nil {
		return err
	}

	service.logger.Warn("user_deleted",
		slog.String("username", username),
		slog.String("deleted_by", caller),
	)
	return nil
}

// ── 3. Helpers ────────────────────────────────────────────────────────────

// requireActiveAdmin resolves the caller's own account and rejects
// every administrative operation unless it is an active admin. Token
// claims alone are not trusted for user administration: a suspended or
// demoted admin is locked out as soon as the record changes.
func (service *Service) requireActiveAdmin(context context.Context, caller string) error {
	account, err := service.repo.GetAccount(context, caller)
	if errors.Is(err, dberr.ErrNotFound) {
		return apperr.Forbidden("Caller account no longer exists")
	}
	if err != nil {
		return err
	}

	if sec.UserRole(account.Role) != sec.RoleAdmin || !account.Active() {
		return apperr.Forbidden("User administration requires an active admin account")
	}
	return nil
}

func (service *Service) issueTokens(context context.Context, account *Account) (*TokenPair, error) {
	accessToken, err := service.tokens.GenerateAccessToken(account.Username, account.Role, constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	refreshToken, err := sec.GenerateSecureToken(refreshTokenBytes)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := service.sessions.Save(context, sec.HashToken(refreshToken), account.Username, constants.RefreshSessionTTL); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(constants.AccessTokenTTL.Seconds()),
	}, nil
}

// recordLoginFailure appends a LOGIN_FAILED entry. Failures here are
// logged but never mask the authentication error itself.
func (service *Service) recordLoginFailure(context context.Context, username, ipAddress, reason string) {
	err := service.repo.RecordActivity(context, &audit.UserActivityEntry{
		Username:  username,
		Action:    audit.ActionLoginFailed,
		Detail:    reason,
		IPAddress: ipAddress,
	})
	if err != nil {
		service.logger.Warn("login_failure_not_recorded",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
	}
}
