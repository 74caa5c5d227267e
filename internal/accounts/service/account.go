package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/embercast/accountd/internal/accounts/domain"
	"github.com/embercast/accountd/internal/accounts/store"
	"github.com/embercast/accountd/pkg/cryptox"
	"github.com/embercast/accountd/pkg/idx"
	"github.com/embercast/accountd/pkg/jwtx"
	"github.com/embercast/accountd/pkg/slogx"
)

var (
	ErrAllFieldsRequired  = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMissingCredentials = errors.New("identifier and password are required")

	// ErrInvalidCredentials covers both "no such user" and "wrong
	// password". The two causes must stay indistinguishable to callers so
	// login responses don't leak which identifiers exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// SignupInput carries the four signup fields. All are required.
type SignupInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput carries the login fields. Identifier is a username or an email.
type LoginInput struct {
	Identifier string
	Password   string
}

// LoginResult is a successful authentication: a signed session token plus the
// public fields of the authenticated user.
type LoginResult struct {
	Token string
	User  domain.User
}

// AccountService orchestrates signup and login. The signer holds the
// process-wide HS512 secret, injected at construction.
type AccountService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Signup validates the input, hashes the password and persists a new user
// with the default role. The email pre-check and the insert run inside one
// transaction; the unique indexes on users(email) and users(username) close
// the remaining check-then-act window.
func (s *AccountService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if in.Username == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return domain.User{}, ErrAllFieldsRequired
	}
	if in.Password != in.ConfirmPassword {
		return domain.User{}, ErrPasswordMismatch
	}

	// Argon2id with a fresh random salt per call, so identical passwords
	// never share a hash.
	passwordHash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: passwordHash,
		Role:         domain.DefaultRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		taken, err := tx.Users().EmailExists(ctx, in.Email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return ErrEmailTaken
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				// The email was free within this transaction, so the
				// unique index that fired is the username one.
				return ErrUsernameTaken
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	log.Info("user created",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login looks the user up by email when the identifier contains "@" and by
// username otherwise, verifies the password and issues a signed token. The
// "@" routing is a heuristic, not format validation: an email-shaped username
// would be misrouted, which matches the documented behaviour.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	if in.Identifier == "" || in.Password == "" {
		return LoginResult{}, ErrMissingCredentials
	}

	var (
		user domain.User
		err  error
	)
	if strings.Contains(in.Identifier, "@") {
		user, err = s.Store.Users().GetUserByEmail(ctx, in.Identifier)
	} else {
		user, err = s.Store.Users().GetUserByUsername(ctx, in.Identifier)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return LoginResult{}, fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := cryptox.VerifyPassword(in.Password, user.PasswordHash); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	claims := jwtx.NewAccessClaims(
		user.Username,
		user.Email,
		user.Role,
		s.TokenTTL,
		s.Issuer,
		time.Now().UTC(),
	)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign session token", slog.Any("error", err))
		return LoginResult{}, fmt.Errorf("failed to sign token: %w", err)
	}

	log.Info("user logged in", slog.String("username", user.Username))

	return LoginResult{Token: token, User: user}, nil
}
