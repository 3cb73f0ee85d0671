package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/apperr"
	"github.com/brucekarangwamanzi/tuma-tr/internal/authz"
	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
	"github.com/brucekarangwamanzi/tuma-tr/internal/store"
)

// UserService manages accounts: signup, lookup and role administration.
type UserService struct {
	store *store.Store
}

// NewUserService constructs UserService.
func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// SignUp registers a new account. New accounts always start as unverified
// customers regardless of what the caller might ask for.
func (s *UserService) SignUp(email, fullName, phone string) (models.User, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return models.User{}, apperr.Validation("invalid email address")
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return models.User{}, apperr.Validation("full name is required")
	}

	user := models.User{
		Email:    email,
		FullName: fullName,
		Phone:    strings.TrimSpace(phone),
		Role:     models.RoleUser,
	}
	if err := s.store.InsertUser(&user); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return models.User{}, apperr.Conflict("an account with email %s already exists", email)
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate resolves an account by email. Credentials are handled by the
// identity provider in front of the core, so email is the whole lookup key.
func (s *UserService) Authenticate(email string) (models.User, error) {
	user, err := s.store.UserByEmail(email)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, apperr.NotFound("no account for email %s", strings.TrimSpace(email))
	}
	return user, err
}

// ListUsers returns all accounts, optionally filtered by a case-insensitive
// search over email and full name. Admin capability required.
func (s *UserService) ListUsers(actor models.User, query string) ([]models.User, error) {
	if !authz.Can(actor.Role, authz.ActionListUsers) {
		return nil, apperr.Forbidden("role %s may not list users", actor.Role)
	}

	users := s.store.ListUsers()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return users, nil
	}

	filtered := users[:0]
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Email), query) ||
			strings.Contains(strings.ToLower(u.FullName), query) {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

// UpdateUserRole changes another account's role. Super admin accounts can
// never be targeted, nobody may change their own role, and only a super
// admin can grant the SUPER_ADMIN role.
func (s *UserService) UpdateUserRole(actor models.User, userID uuid.UUID, rawRole string) (models.User, error) {
	if !authz.Can(actor.Role, authz.ActionChangeUserRole) {
		return models.User{}, apperr.Forbidden("role %s may not change user roles", actor.Role)
	}

	newRole, err := models.ParseRole(rawRole)
	if err != nil {
		return models.User{}, apperr.Validation("%v", err)
	}

	target, err := s.store.UserByID(userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, apperr.NotFound("user %s does not exist", userID)
	}
	if err != nil {
		return models.User{}, err
	}

	if target.ID == actor.ID {
		return models.User{}, apperr.Forbidden("you cannot change your own role")
	}
	if target.Role == models.RoleSuperAdmin {
		return models.User{}, apperr.Forbidden("super admin accounts cannot be reassigned")
	}
	if newRole == models.RoleSuperAdmin && actor.Role != models.RoleSuperAdmin {
		return models.User{}, apperr.Forbidden("only a super admin may grant SUPER_ADMIN")
	}

	return s.store.SetUserRole(userID, newRole)
}
