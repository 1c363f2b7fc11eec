package services

import (
	"chat-relay/auth"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/repositories"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type IAuthService interface {
	Register(req auth.RegisterRequest) (Session, error)
	Login(req auth.LoginRequest) (Session, error)
	Verify(token string) (domain.Identity, error)
}

// Session is returned by a successful register or login.
type Session struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type AuthService struct {
	log            *slog.Logger
	userRepository repositories.IUserRepository
	tokens         *auth.TokenManager
	now            func() time.Time
}

func NewAuthService(log *slog.Logger, repo repositories.IUserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{log: log, userRepository: repo, tokens: tokens, now: time.Now}
}

func (s *AuthService) Register(req auth.RegisterRequest) (Session, error) {
	// Validation runs before any expensive hashing
	if err := auth.ValidateRegister(req); err != nil {
		return Session{}, err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	now := s.now().UTC()
	user := domain.User{
		ID:           domain.UserID(uuid.NewString()),
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
		Status:       domain.StatusOffline,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepository.Create(user); err != nil {
		return Session{}, err
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return Session{}, err
	}
	s.log.Info("User registered", "user_id", user.ID, "username", user.Username)
	return Session{Token: token, User: user}, nil
}

// Login answers ErrInvalidCredentials for both an unknown user and a wrong
// password, so usernames cannot be enumerated.
func (s *AuthService) Login(req auth.LoginRequest) (Session, error) {
	if err := auth.ValidateLogin(req); err != nil {
		return Session{}, err
	}

	user, err := s.userRepository.FindByUsername(req.Username)
	if err != nil {
		s.log.Debug("Login for unknown user", "username", req.Username, "error", err)
		return Session{}, errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, User: user}, nil
}

func (s *AuthService) Verify(token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, errors.ErrMissingToken
	}
	return s.tokens.ValidateToken(token)
}
