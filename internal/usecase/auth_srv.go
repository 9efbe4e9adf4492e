package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lupang-store/internal/data/entity"
	"lupang-store/internal/data/repository"
	"lupang-store/internal/dto/request"
	"lupang-store/internal/dto/response"
	"lupang-store/pkg/utils"

	"go.uber.org/zap"
)

// LoginStatus classifies a login attempt three ways. Credential failures
// are outcomes, not errors: only store trouble surfaces as an error.
type LoginStatus int

const (
	LoginAuthenticated LoginStatus = iota
	LoginWrongPassword
	LoginUserNotFound
)

// LoginOutcome is transient; nothing about it is persisted.
type LoginOutcome struct {
	Status LoginStatus
	Token  string
	Name   string
}

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*LoginOutcome, error)
}

type authService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAuthService(repo *repository.Repository, log *zap.Logger) AuthService {
	return &authService{
		repo: repo,
		log:  log.With(zap.String("service", "auth")),
	}
}

// Signup builds a user record and puts it into the users collection.
// The record key defaults to the email when no explicit userId was sent.
// A put with an existing userId replaces the old record silently.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.SignupResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = req.Email
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	user := &entity.User{
		UserID:       userID,
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.User.Put(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", userID),
		zap.String("email", req.Email))

	return &response.SignupResponse{
		Message: "Signup successful!",
		UserID:  userID,
	}, nil
}

// Login resolves credentials with a point lookup by email and classifies
// the result. Email and password are trimmed first; the email match is
// exact and case-sensitive.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*LoginOutcome, error) {
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", email))
		return &LoginOutcome{Status: LoginUserNotFound}, nil
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.log.Warn("Login password mismatch", zap.String("user_id", user.UserID))
		return &LoginOutcome{Status: LoginWrongPassword}, nil
	}

	s.log.Info("User logged in", zap.String("user_id", user.UserID))

	return &LoginOutcome{
		Status: LoginAuthenticated,
		Token:  utils.GenerateToken(),
		Name:   user.Name,
	}, nil
}
