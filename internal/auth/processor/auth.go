package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"vsl-server/internal/config"
	"vsl-server/internal/observability"
	"vsl-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrFailedSignup       = errors.New("failed to sign up")
	ErrFailedSignIn       = errors.New("failed to sign in")
)

const tokenIssuer = "vsl-server"

type AuthProcessor struct {
	store     AuthStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    *observability.Logger
	now       func() time.Time
}

func New(store AuthStore, authConfig config.AuthConfig, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:     store,
		jwtSecret: authConfig.JWTSecret,
		tokenTTL:  authConfig.TokenTTL,
		logger:    logger,
		now:       time.Now,
	}
}

type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// AuthenticatedUser is a user paired with a freshly issued token
type AuthenticatedUser struct {
	User  User
	Token string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *AuthProcessor) Register(ctx context.Context, email, password string) (AuthenticatedUser, error) {
	email = normalizeEmail(email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return AuthenticatedUser{}, ErrFailedSignup
	}

	user, err := p.store.CreateUser(ctx, email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return AuthenticatedUser{}, ErrEmailExists
		}
		p.logger.Error(ctx, "failed to create user", err)
		return AuthenticatedUser{}, ErrFailedSignup
	}

	token, err := p.generateJWTToken(ctx, user.ID)
	if err != nil {
		return AuthenticatedUser{}, ErrFailedSignup
	}

	p.logger.Info(ctx, "user registered")
	return AuthenticatedUser{User: User{ID: user.ID, Email: user.Email}, Token: token}, nil
}

func (p *AuthProcessor) Login(ctx context.Context, email, password string) (AuthenticatedUser, error) {
	email = normalizeEmail(email)
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthenticatedUser{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by email", err)
		return AuthenticatedUser{}, ErrFailedSignIn
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.logger.InfoWithError(ctx, "password mismatch", err)
		return AuthenticatedUser{}, ErrInvalidCredentials
	}

	token, err := p.generateJWTToken(ctx, user.ID)
	if err != nil {
		return AuthenticatedUser{}, err
	}
	return AuthenticatedUser{User: User{ID: user.ID, Email: user.Email}, Token: token}, nil
}

func (p *AuthProcessor) GetUser(ctx context.Context, userID uuid.UUID) (User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return User{}, err
	}
	return User{ID: user.ID, Email: user.Email}, nil
}
