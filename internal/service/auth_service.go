package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/mail"
	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/internal/repository"
	"github.com/d60-Lab/campus-social/pkg/logger"
)

// TokenIssuer 由 pkg/jwt.Manager 实现
type TokenIssuer interface {
	Issue(email string) (string, error)
	Subject(token string) (string, error)
}

type AuthConfig struct {
	APIBaseURL      string
	FrontendBaseURL string
	AdminEmail      string
	AdminPassword   string
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService 注册、登录、邮箱验证与找回密码
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *model.User, error)
	RegisterOAuth(ctx context.Context, email, firstName, lastName string) (string, *model.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	// ResolveToken 把 bearer token 解析为用户；过期返回 jwt.ErrTokenExpired
	ResolveToken(ctx context.Context, token string) (*model.User, error)
	Verify(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, token, email, newPassword string) error
	EnsureAdmin(ctx context.Context) error
}

type authService struct {
	users    repository.UserRepository
	tokens   TokenIssuer
	notifier Notifier
	cfg      AuthConfig
}

func NewAuthService(users repository.UserRepository, tokens TokenIssuer, notifier Notifier, cfg AuthConfig) AuthService {
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin"
	}
	return &authService{users: users, tokens: tokens, notifier: notifier, cfg: cfg}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(password string) (string, error) {
	if len(password) < 8 || len(password) > 72 {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *authService) Register(ctx context.Context, in RegisterInput) (string, *model.User, error) {
	first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return "", nil, ErrMissingName
	}
	if utf8.RuneCountInString(first) > 32 || utf8.RuneCountInString(last) > 32 {
		return "", nil, ErrFieldTooLong
	}
	email := normalizeEmail(in.Email)
	if err := model.CurrentEmailPolicy().ValidateClaim(email); err != nil {
		return "", nil, err
	}
	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return "", nil, err
	} else if existing != nil {
		return "", nil, ErrEmailTaken
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return "", nil, err
	}
	token := uuid.NewString()
	u := &model.User{
		FirstName:         first,
		LastName:          last,
		Email:             email,
		Password:          &hash,
		Role:              model.RoleGuest,
		VerificationToken: &token,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, ErrEmailTaken
		}
		return "", nil, err
	}
	s.sendVerification(u)

	jwtToken, err := s.tokens.Issue(u.Email)
	if err != nil {
		return "", nil, err
	}
	logger.Info("user registered", zap.Uint("user_id", u.ID))
	return jwtToken, u, nil
}

func (s *authService) RegisterOAuth(ctx context.Context, email, firstName, lastName string) (string, *model.User, error) {
	email = normalizeEmail(email)
	if err := model.CurrentEmailPolicy().ValidateClaim(email); err != nil {
		return "", nil, err
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if u != nil {
		u.FirstName, u.LastName = firstName, lastName
		if err := s.users.Save(ctx, u); err != nil {
			return "", nil, err
		}
	} else {
		token := uuid.NewString()
		u = &model.User{
			FirstName:         firstName,
			LastName:          lastName,
			Email:             email,
			Role:              model.RoleGuest,
			VerificationToken: &token,
		}
		if err := s.users.Create(ctx, u); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return "", nil, ErrEmailTaken
			}
			return "", nil, err
		}
		s.sendVerification(u)
		logger.Info("oauth user registered", zap.Uint("user_id", u.ID))
	}

	jwtToken, err := s.tokens.Issue(u.Email)
	if err != nil {
		return "", nil, err
	}
	return jwtToken, u, nil
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", err
	}
	if u == nil || !u.HasPassword() {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	// 已验证用户登录成功说明未使用的重置链接可以作废
	if u.Verified && u.VerificationToken != nil {
		u.VerificationToken = nil
		if err := s.users.Save(ctx, u); err != nil {
			logger.Warn("clear stale reset token failed", zap.Uint("user_id", u.ID), zap.Error(err))
		}
	}
	return s.tokens.Issue(u.Email)
}

func (s *authService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	email, err := s.tokens.Subject(token)
	if err != nil {
		return nil, err
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}

func (s *authService) Verify(ctx context.Context, token string) error {
	u, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrInvalidToken
	}
	u.Verified = true
	u.VerificationToken = nil
	if u.Role == model.RoleGuest {
		u.Role = model.RoleStudent
	}
	return s.users.Save(ctx, u)
}

func (s *authService) ResetPassword(ctx context.Context, email string) error {
	u, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if u == nil || u.VerificationToken != nil {
		return nil
	}
	token := uuid.NewString()
	u.VerificationToken = &token
	if err := s.users.Save(ctx, u); err != nil {
		return err
	}
	localPart, _, _ := strings.Cut(u.Email, "@")
	s.notifier.Enqueue(mail.Message{
		To:         u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Subject:    "Password Change Confirmation for USM Social Account",
		Body:       "Thank you for using USM Social! To complete the password change process, please click the link below:",
		Link:       strings.TrimRight(s.cfg.FrontendBaseURL, "/") + "/#/passwordchange/" + localPart + "/" + token,
		ButtonText: "Change Password",
	})
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, token, email, newPassword string) error {
	byToken, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	byEmail, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if byToken == nil || byEmail == nil || byToken.ID != byEmail.ID {
		return ErrInvalidToken
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	u := byToken
	u.Password = &hash
	u.VerificationToken = nil
	u.Verified = true
	if u.Role == model.RoleGuest {
		u.Role = model.RoleStudent
	}
	return s.users.Save(ctx, u)
}

// EnsureAdmin 配置了管理员密码且账号不存在时创建；
// 保留邮箱已被非管理员占用时返回 ErrAdminEmailOccupied
func (s *authService) EnsureAdmin(ctx context.Context) error {
	if s.cfg.AdminPassword == "" {
		return nil
	}
	existing, err := s.users.FindByEmail(ctx, s.cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Role != model.RoleAdmin {
			return fmt.Errorf("%w: user %d has role %s", ErrAdminEmailOccupied, existing.ID, existing.Role)
		}
		return nil
	}
	hash, err := hashPassword(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("admin password: %w", err)
	}
	admin := &model.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     s.cfg.AdminEmail,
		Password:  &hash,
		Role:      model.RoleAdmin,
		Verified:  true,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	logger.Info("admin account created", zap.Uint("user_id", admin.ID))
	return nil
}

func (s *authService) sendVerification(u *model.User) {
	if u.VerificationToken == nil {
		return
	}
	s.notifier.Enqueue(mail.Message{
		To:         u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Subject:    "Verify Email Address for USM Social",
		Body:       "Thank you for joining USM Social! Please confirm your email address by clicking the link below:",
		Link:       strings.TrimRight(s.cfg.APIBaseURL, "/") + "/api/v1/verify/" + *u.VerificationToken,
		ButtonText: "Verify Account",
	})
}
