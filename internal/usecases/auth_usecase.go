package usecases

import (
	"context"

	"github.com/google/uuid"
	"research-nest.backend/internal/domain/entities"
	domainerrors "research-nest.backend/internal/domain/errors"
	"research-nest.backend/internal/domain/repositories"
	"research-nest.backend/pkg/crypto"
)

// AuthUsecase handles admin login verification
type AuthUsecase struct {
	userRepo repositories.UserRepository
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository) *AuthUsecase {
	return &AuthUsecase{userRepo: userRepo}
}

// Login verifies the credentials and returns the matching user. Unknown
// username and wrong password collapse into the same ErrInvalidCredentials
// so the response cannot be used to enumerate accounts.
func (u *AuthUsecase) Login(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID loads the account bound to an authenticated session
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
