package users

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/oakinyemi/masjid-receipts/internal/auth"
	"github.com/oakinyemi/masjid-receipts/internal/common"
	"github.com/oakinyemi/masjid-receipts/internal/entity"
	"github.com/oakinyemi/masjid-receipts/internal/repository"
)

// Service handles account registration, login and token authentication.
type Service struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   *slog.Logger
}

func NewService(userRepo repository.UserRepository, tokens *auth.TokenManager, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{userRepo: userRepo, tokens: tokens, logger: logger}
}

// RegisterRequest represents a new account. Role is free-form input that
// must normalize onto the closed role enumeration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Register creates an account after checking username/email uniqueness.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*entity.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, common.InvalidArgumentError("username is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, common.InvalidArgumentError("email is required")
	}
	if req.Password == "" {
		return nil, common.InvalidArgumentError("password is required")
	}

	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, common.InvalidArgumentError(err.Error())
	}

	if existing, err := s.userRepo.GetByUsername(ctx, req.Username); err != nil {
		return nil, common.InternalErrorf("lookup username: %v", err)
	} else if existing != nil {
		return nil, common.AlreadyExistsError("username already registered")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, req.Email); err != nil {
		return nil, common.InternalErrorf("lookup email: %v", err)
	} else if existing != nil {
		return nil, common.AlreadyExistsError("email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, common.InternalErrorf("hash password: %v", err)
	}

	created, err := s.userRepo.Create(ctx, &entity.User{
		Username:       req.Username,
		Email:          req.Email,
		FullName:       req.FullName,
		Role:           role,
		IsActive:       true,
		HashedPassword: hash,
	})
	if err != nil {
		s.logger.Error("failed to create user", "username", req.Username, "error", err)
		return nil, common.InternalErrorf("create user: %v", err)
	}

	s.logger.Info("user registered", "username", created.Username, "role", created.Role)
	return created, nil
}

// Login verifies credentials and returns a bearer token. The same error is
// returned for an unknown username and a wrong password.
func (s *Service) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, common.InternalErrorf("lookup user: %v", err)
	}
	if user == nil || !auth.CheckPassword(user.HashedPassword, password) {
		return "", nil, common.UnauthenticatedError("incorrect username or password")
	}

	token, err := s.tokens.Issue(user.Username, time.Now())
	if err != nil {
		return "", nil, common.InternalErrorf("issue token: %v", err)
	}
	s.logger.Info("user logged in", "username", user.Username)
	return token, user, nil
}

// Authenticate resolves a bearer token to an active user. Unknown roles are
// rejected here, at the boundary, before any report assembly runs.
func (s *Service) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		return nil, common.UnauthenticatedError("could not validate credentials")
	}
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, common.InternalErrorf("lookup user: %v", err)
	}
	if user == nil {
		return nil, common.UnauthenticatedError("could not validate credentials")
	}
	if !user.IsActive {
		return nil, common.UnauthenticatedError("inactive user")
	}
	if !user.Role.Valid() {
		return nil, common.PermissionDeniedError("unrecognized role")
	}
	return user, nil
}
