package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService verifies presented credentials against stored bcrypt hashes
// and owns the one-time admin bootstrap.
type AuthService interface {
	// VerifyCredentials returns the matching user, or ErrInvalidCredentials
	// for an unknown username as well as for a wrong password. Callers must
	// not be able to tell which of the two failed.
	VerifyCredentials(ctx context.Context, username, password string) (*model.User, error)
	// EnsureAdmin creates username with a hash of password unless a user
	// with that name already exists. Idempotent; reports whether a row was
	// created.
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) VerifyCredentials(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// Burn a comparison anyway so unknown usernames cost the same as
		// wrong passwords.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	err = s.users.Create(ctx, &model.User{Username: username, PasswordHash: string(hash)})
	if errors.Is(err, repository.ErrUsernameTaken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// dummyHash is a hash of an arbitrary string, used to equalize timing when
// the username does not exist.
var dummyHash = func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("-"), bcrypt.MinCost)
	return h
}()
