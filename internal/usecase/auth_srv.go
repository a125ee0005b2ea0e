package usecase

import (
	"context"
	"fmt"
	"time"

	"soil-farming-agent/internal/data/entity"
	"soil-farming-agent/internal/data/repository"
	"soil-farming-agent/internal/dto/request"
	"soil-farming-agent/internal/dto/response"
	"soil-farming-agent/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	users  repository.UserRepository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:  users,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check if email is already registered
	existingUser, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return fmt.Errorf("email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	// 4. Create user with default role
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Super-admin literal credential pair, never stored
	if req.Email == s.config.Admin.Email && req.Password == s.config.Admin.Password {
		s.log.Info("Super-admin logged in", zap.String("email", req.Email))
		return &response.LoginResponse{
			Success: true,
			Role:    string(entity.RoleAdmin),
			Email:   req.Email,
		}, nil
	}

	// 3. Find user
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, fmt.Errorf("user not found")
	}

	// 4. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("incorrect password")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	// No session or token is minted. The client remembers the role string
	// and asserts it back through the x-role header.
	return &response.LoginResponse{
		Success: true,
		Role:    string(user.Role),
		Email:   user.Email,
	}, nil
}
