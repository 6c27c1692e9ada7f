package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/bloodbank/internal/domain"
	"github.com/GlebRadaev/bloodbank/pkg/auth"
	"github.com/GlebRadaev/bloodbank/pkg/mailer"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

var (
	ErrEmailTaken            = errors.New("email already exists")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrExpiredOrInvalidToken = errors.New("link expired or invalid")
)

const (
	subjectWelcome         = "Welcome to Blood-Management-APP! 🩸"
	subjectResetPassword   = "Reset Your Password"
	subjectPasswordUpdated = "Password Updated Successfully"
	subjectAccountDeleted  = "Account Deleted"
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, email, passwordHash string) (bool, error)
	Delete(ctx context.Context, id int) error
}

type Notifier interface {
	Notify(ctx context.Context, to, subject, template string, data any)
}

type RegisterInput struct {
	FullName   string
	Username   string
	Email      string
	Password   string
	BloodGroup string
}

type ProfileInput struct {
	FullName    string
	Bio         string
	Email       string
	RemovePhoto bool
}

type Service struct {
	userRepo    Repo
	notifier    Notifier
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	baseURL     string
}

func New(repo Repo, notifier Notifier, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, baseURL string) *Service {
	return &Service{
		userRepo:    repo,
		notifier:    notifier,
		hashService: hashService,
		jwtService:  jwtService,
		baseURL:     baseURL,
	}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("email already registered", zap.String("email", in.Email))
		return nil, ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(in.Password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashedPassword,
		FullName:     in.FullName,
		ProfileImage: domain.DefaultProfileImage,
	}
	if in.BloodGroup != "" {
		bloodGroup := in.BloodGroup
		user.BloodGroup = &bloodGroup
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, s.duplicateIdentity(ctx, in.Email)
		}
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(ctx, newUser.Email, subjectWelcome, mailer.TemplateWelcome, map[string]any{
		"Username": newUser.Username,
	})
	zap.L().Info("user successfully registered", zap.String("username", newUser.Username))
	return newUser, nil
}

// duplicateIdentity tells which unique column rejected an insert that passed
// the email pre-check.
func (s *Service) duplicateIdentity(ctx context.Context, email string) error {
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.Int("user_id", user.ID))
	return user, nil
}

func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	token, err := s.jwtService.GenerateResetToken(user.Email, time.Now().Add(auth.ResetMaxAge))
	if err != nil {
		zap.L().Error("can't generate reset token: ", zap.Error(err))
		return err
	}

	s.notifier.Notify(ctx, user.Email, subjectResetPassword, mailer.TemplateForgotPassword, map[string]any{
		"Link": s.baseURL + "/reset_password/" + token,
	})
	return nil
}

// ValidateResetToken returns the email the token was issued for.
func (s *Service) ValidateResetToken(token string) (string, error) {
	claims, err := s.jwtService.ValidateResetToken(token)
	if err != nil {
		return "", ErrExpiredOrInvalidToken
	}
	return claims.Email, nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := s.ValidateResetToken(token)
	if err != nil {
		return err
	}
	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	found, err := s.userRepo.UpdatePassword(ctx, email, hashedPassword)
	if err != nil {
		return err
	}
	if !found {
		return ErrExpiredOrInvalidToken
	}

	s.notifier.Notify(ctx, email, subjectPasswordUpdated, mailer.TemplateRecoverPassword, nil)
	zap.L().Info("password reset", zap.String("email", email))
	return nil
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int, in ProfileInput) (*domain.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Email != "" && in.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		user.Email = in.Email
	}
	user.FullName = in.FullName
	user.Bio = in.Bio
	if in.RemovePhoto {
		user.ProfileImage = domain.DefaultProfileImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) SetProfileImage(ctx context.Context, id int, filename string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	user.ProfileImage = filename
	return s.userRepo.Update(ctx, user)
}

func (s *Service) DeleteAccount(ctx context.Context, id int) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.Notify(ctx, user.Email, subjectAccountDeleted, mailer.TemplateDeleteAccount, nil)
	zap.L().Info("account deleted", zap.Int("user_id", id))
	return nil
}
