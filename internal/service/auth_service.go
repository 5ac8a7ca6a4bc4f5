package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"auctionhouse/internal/models"
	"auctionhouse/internal/repository"

	"github.com/google/uuid"
)

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid session token")

	errEmptyUsername = errors.New("username is empty")
	errEmptyPassword = errors.New("password is empty")
)

// AuthService handles registration, login and session resolution.
type AuthService struct {
	users    repository.Users
	sessions repository.Sessions
	events   repository.EventRepo
}

func NewAuthService(users repository.Users, sessions repository.Sessions, events repository.EventRepo) *AuthService {
	return &AuthService{users: users, sessions: sessions, events: events}
}

// SignUp registers a new user and records a USER_REGISTERED audit event.
// The raw password never reaches the audit log.
func (s *AuthService) SignUp(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return errEmptyUsername
	}
	if strings.TrimSpace(password) == "" {
		return errEmptyPassword
	}
	if err := s.users.Register(username, password); err != nil {
		return fmt.Errorf("register user %q: %w", username, err)
	}

	return s.events.Append(ctx, models.AuditEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        "USER_REGISTERED",
		Description: "User registered: " + username,
	})
}

// SignIn verifies credentials against the vault and issues an opaque session
// token. The token itself carries nothing; privileged requests resolve it
// back to a username via ResolveToken.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (string, error) {
	if !s.users.Authenticate(username, password) {
		return "", ErrInvalidCredentials
	}
	token, err := s.sessions.Login(username)
	if err != nil {
		return "", fmt.Errorf("issue session for %q: %w", username, err)
	}
	return token, nil
}

// ResolveToken maps a bearer token to its username.
func (s *AuthService) ResolveToken(token string) (string, error) {
	username, ok := s.sessions.Resolve(token)
	if !ok {
		return "", ErrInvalidToken
	}
	return username, nil
}
