package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
	"github.com/sbilibin2017/comics-keeper/internal/models"
	"github.com/sbilibin2017/comics-keeper/internal/password"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrInvalidInput       = errors.New("email and password are required")
	ErrUserAlreadyExists  = errors.New("email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooLong    = errors.New("password is too long")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email string, passwordHash string) (*models.UserDB, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// TokenRevoker puts token ids on the denylist.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	hasher  PasswordHasher
	jwt     JWTGenerator
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, hasher PasswordHasher, jwt JWTGenerator, revoker TokenRevoker) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		hasher:  hasher,
		jwt:     jwt,
		revoker: revoker,
	}
}

// Register creates a new account. The returned user never carries the password hash.
func (svc *AuthService) Register(ctx context.Context, email, plain string) (*models.UserDB, error) {
	log := logger.FromContext(ctx)

	if email == "" || plain == "" {
		return nil, ErrInvalidInput
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		log.Warnw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := svc.hasher.Hash(plain)
	if errors.Is(err, password.ErrTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, email, hashedPassword)
	if errors.Is(err, models.ErrAlreadyExists) {
		// lost the race against a concurrent registration
		log.Warnw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &models.UserDB{
		UserID:    user.UserID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return "", ErrInvalidInput
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		log.Warnw("user does not exist", "email", email)
		return "", ErrUserDoesNotExist
	}
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := svc.hasher.Compare(user.PasswordHash, password); err != nil {
		log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the token with the given id until it would have expired anyway.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := svc.revoker.Revoke(ctx, tokenID, time.Until(expiresAt)); err != nil {
		logger.FromContext(ctx).Errorw("failed to revoke token", "token_id", tokenID, "err", err)
		return err
	}
	return nil
}
