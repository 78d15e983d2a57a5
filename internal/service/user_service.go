package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/apperr"
	"github.com/mrAbdou/ZenithShop-sub002/internal/domain/model"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/db"
	"github.com/mrAbdou/ZenithShop-sub002/internal/infra/repository/redis_repo"
	"github.com/mrAbdou/ZenithShop-sub002/internal/token"
	"golang.org/x/crypto/bcrypt"
)

// ISessionStore session的儲存後端(redis)
type ISessionStore interface {
	CreateSession(ctx context.Context, session *redis_repo.UserSession) error
	GetSession(ctx context.Context, sessionID string) (*redis_repo.UserSession, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type RegisterInput struct {
	Name     string `validate:"required,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type IUserService interface {
	Register(ctx context.Context, input RegisterInput) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	Logout(ctx context.Context, sessionID string) error
	CompleteSignUp(ctx context.Context, userID, phone, address string) (*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CountUsers(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	UpdateCustomerProfile(ctx context.Context, userID, name, phone, address string) (*model.User, error)
	DeleteCustomerProfile(ctx context.Context, userID string) error
}

type UserService struct {
	userRepo   db.IUserRepository
	sessions   ISessionStore
	tokenMaker token.Maker
	tokenTTL   time.Duration
	validate   *validator.Validate
	logger     *slog.Logger
}

func NewUserService(userRepo db.IUserRepository, sessions ISessionStore, tokenMaker token.Maker, tokenTTL time.Duration, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		userRepo:   userRepo,
		sessions:   sessions,
		tokenMaker: tokenMaker,
		tokenTTL:   tokenTTL,
		validate:   validator.New(),
		logger:     logger,
	}
}

// Register 建立帳號，角色留空，completeSignUp時才賦值
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperr.NewValidation("invalid registration", validationFields(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.DatabaseOperationFail, "failed to hash password", err)
	}

	user := &model.User{
		UserID:       uuid.New().String(),
		UserName:     input.Name,
		UserEmail:    input.Email,
		PasswordHash: string(hash),
	}
	// email重複由unique constraint擋下，映射成AlreadyExists
	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, apperr.FromStorage(err, "failed to create user")
	}
	return user, nil
}

// Login 驗證密碼後建立session並簽發帶session id的token
func (s *UserService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, apperr.FromStorage(err, "failed to load user")
	}
	if user == nil {
		return "", nil, apperr.New(apperr.Unauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.Unauthorized, "invalid credentials")
	}

	sessionID := uuid.New().String()
	accessToken, payload, err := s.tokenMaker.CreateToken(sessionID, user.UserID, s.tokenTTL)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.DatabaseOperationFail, "failed to create token", err)
	}

	session := &redis_repo.UserSession{
		SessionID: sessionID,
		UserID:    user.UserID,
		Role:      user.Role,
		UserName:  user.UserName,
		UserEmail: user.UserEmail,
		CreatedAt: payload.IssuedAt,
		ExpiresAt: payload.ExpiredAt,
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return "", nil, apperr.Wrap(apperr.TemporarilyUnavailable, "failed to create session", err)
	}

	s.logger.Info("user logged in", slog.String("user_id", user.UserID))
	return accessToken, user, nil
}

func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
		return apperr.Wrap(apperr.TemporarilyUnavailable, "failed to delete session", err)
	}
	return nil
}

// CompleteSignUp 賦予CUSTOMER角色，只能執行一次
// 角色之後不可由用戶自行修改
func (s *UserService) CompleteSignUp(ctx context.Context, userID, phone, address string) (*model.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.SignupComplete {
		return nil, apperr.NewValidation("signup already completed", map[string]string{
			"userId": "signup can only be completed once",
		})
	}

	user.Role = model.RoleCustomer
	user.UserPhone = phone
	user.UserAddress = address
	user.SignupComplete = true
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, apperr.FromStorage(err, "failed to complete signup")
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to get user")
	}
	if user == nil {
		return nil, apperr.Newf(apperr.NotFound, "user %s not found", userID)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, apperr.FromStorage(err, "failed to list users")
	}
	return users, nil
}

func (s *UserService) CountUsers(ctx context.Context) (int64, error) {
	total, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return 0, apperr.FromStorage(err, "failed to count users")
	}
	return total, nil
}

func (s *UserService) CountCustomers(ctx context.Context) (int64, error) {
	total, err := s.userRepo.CountCustomers(ctx)
	if err != nil {
		return 0, apperr.FromStorage(err, "failed to count customers")
	}
	return total, nil
}

// UpdateCustomerProfile 更新個資，角色欄位永遠不碰
func (s *UserService) UpdateCustomerProfile(ctx context.Context, userID, name, phone, address string) (*model.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.UserName = name
	}
	if phone != "" {
		user.UserPhone = phone
	}
	if address != "" {
		user.UserAddress = address
	}
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, apperr.FromStorage(err, "failed to update profile")
	}
	return user, nil
}

func (s *UserService) DeleteCustomerProfile(ctx context.Context, userID string) error {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return apperr.FromStorage(err, "failed to delete profile")
	}
	return nil
}

// LoadSession middleware用，token payload -> session
func (s *UserService) LoadSession(ctx context.Context, sessionID string) (*redis_repo.UserSession, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redis_repo.ErrSessionNotFound) {
			return nil, apperr.New(apperr.Unauthorized, "session expired or revoked")
		}
		return nil, apperr.Wrap(apperr.TemporarilyUnavailable, "failed to load session", err)
	}
	return session, nil
}

var _ IUserService = (*UserService)(nil)
