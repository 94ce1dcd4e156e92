package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	userdomain "github.com/ghuser/taskdeck/services/user/domain"
	"github.com/ghuser/taskdeck/services/user/domain/models"
	"github.com/ghuser/taskdeck/services/user/domain/repositories"
)

// BoardPurger is the user service's view of the board context: the cascade
// hook that removes every card an account owns before the account row goes.
type BoardPurger interface {
	DeleteAllByOwner(ctx context.Context, owner string) error
}

// ShareWithdrawer is the user service's view of the share registry: it drops
// every share addressed to the departing account.
type ShareWithdrawer interface {
	RevokeAllForRecipient(ctx context.Context, recipient string) error
}

// UserService orchestrates registration, authentication and account removal.
type UserService struct {
	repo   repositories.UserRepository
	boards BoardPurger
	shares ShareWithdrawer
}

// NewUserService returns a UserService wired with the given repository and
// the board/share cascade hooks account deletion runs.
func NewUserService(repo repositories.UserRepository, boards BoardPurger, shares ShareWithdrawer) *UserService {
	return &UserService{repo: repo, boards: boards, shares: shares}
}

// Register creates an account with a normalized (lower-cased) username and a
// bcrypt password hash. Returns ErrUserAlreadyExists for a taken username.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", userdomain.ErrInvalidCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := models.NewUser(username, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", userdomain.ErrInvalidUsername, err)
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Authenticate verifies the password for the given login. The username is
// normalized before lookup; a missing user and a wrong password are both
// reported as ErrInvalidCredentials so login probing cannot enumerate accounts.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, models.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			return nil, userdomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, userdomain.ErrInvalidCredentials
	}
	return user, nil
}

// Delete removes the account and everything attached to it: shares addressed
// to the user, then the user's own cards (each revoking its outgoing shares),
// then the account row. Any cascade failure aborts the whole deletion so the
// account never ends up half-removed; the FK cascades in the schema are only
// a backstop. Returns ErrUserNotFound for an unknown username.
func (s *UserService) Delete(ctx context.Context, username string) error {
	username = models.NormalizeUsername(username)

	exists, err := s.repo.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return userdomain.ErrUserNotFound
	}

	if err := s.shares.RevokeAllForRecipient(ctx, username); err != nil {
		return fmt.Errorf("withdraw shares before delete: %w", err)
	}
	if err := s.boards.DeleteAllByOwner(ctx, username); err != nil {
		return fmt.Errorf("purge boards before delete: %w", err)
	}

	if err := s.repo.Delete(ctx, username); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Exists reports whether the given username is registered.
func (s *UserService) Exists(ctx context.Context, username string) (bool, error) {
	exists, err := s.repo.Exists(ctx, username)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return exists, nil
}
