package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"familybudget/internal/models/db_models"
	"familybudget/internal/models/request_models"
	"familybudget/internal/models/response_models"
	"familybudget/internal/repositories"
	mem "familybudget/pkg/memcache"
	"familybudget/pkg/utils"
)

const (
	welcomeTitle         = "Добро пожаловать!"
	welcomeFounderText   = `Вы успешно зарегистрировались в приложении "Семейный бюджет". Теперь вы можете добавить членов своей семьи.`
	passwordResetTitle   = "Восстановление пароля"
	passwordResetText    = "Запрошено восстановление пароля. Если это были не вы, просто проигнорируйте это уведомление."
	passwordChangedTitle = "Пароль изменён"
	passwordChangedText  = "Пароль вашей учетной записи был изменён."
	resetTokenBytes      = 32
)

type AccountOptions struct {
	BcryptCost    int
	ResetTokenTTL time.Duration
	MaxParents    int
}

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Logout(ctx context.Context, claims *utils.Claims)
	GetProfile(ctx context.Context, userID int64) (*db_models.User, error)
	UpdateProfile(ctx context.Context, userID int64, request request_models.UpdateProfileRequest) (*db_models.User, error)
	ChangePassword(ctx context.Context, userID int64, request request_models.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error
}

type AccountService struct {
	userRepo      repositories.UserRepository
	familyRepo    repositories.FamilyRepository
	notifications NotificationServiceInterface
	tokens        *utils.TokenIssuer
	resetTokens   mem.ResetTokenStore
	revoked       mem.RevokedTokenStore
	opts          AccountOptions
	logger        *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	familyRepo repositories.FamilyRepository,
	notifications NotificationServiceInterface,
	tokens *utils.TokenIssuer,
	resetTokens mem.ResetTokenStore,
	revoked mem.RevokedTokenStore,
	opts AccountOptions,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:      userRepo,
		familyRepo:    familyRepo,
		notifications: notifications,
		tokens:        tokens,
		resetTokens:   resetTokens,
		revoked:       revoked,
		opts:          opts,
		logger:        logger,
	}
}

// Register founds a new family with the registering user as its first parent.
func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	if a.userRepo.FindByUsername(request.Username) != nil {
		return nil, utils.ErrUsernameTaken
	}
	if a.userRepo.FindByEmail(request.Email) != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password, a.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	familyName := request.FamilyName
	if familyName == "" {
		surname := request.LastName
		if surname == "" {
			surname = request.Username
		}
		familyName = "Семья " + surname
	}
	family := a.familyRepo.CreateFamily(familyName)

	user, err := a.userRepo.CreateUserUnique(db_models.User{
		Username:     request.Username,
		PasswordHash: hashedPassword,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		Role:         db_models.RoleParent,
		FamilyID:     family.ID,
	}, a.opts.MaxParents)
	if err != nil {
		// the family stays behind without members; there is no rollback
		return nil, mapUserCreateError(err)
	}

	a.notifications.Notify(ctx, user.ID, welcomeTitle, welcomeFounderText)
	a.logger.Info("family registered",
		zap.Int64("user_id", user.ID),
		zap.Int64("family_id", family.ID),
	)

	return a.issue(user)
}

func (a *AccountService) Login(_ context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user := a.userRepo.FindByUsername(request.Username)
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issue(*user)
}

func (a *AccountService) Logout(_ context.Context, claims *utils.Claims) {
	if claims == nil || claims.ExpiresAt == nil {
		return
	}
	a.revoked.Revoke(claims.ID, claims.ExpiresAt.Time)
}

func (a *AccountService) GetProfile(_ context.Context, userID int64) (*db_models.User, error) {
	user := a.userRepo.FindByID(userID)
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (a *AccountService) UpdateProfile(_ context.Context, userID int64, request request_models.UpdateProfileRequest) (*db_models.User, error) {
	if request.Email != nil {
		if other := a.userRepo.FindByEmail(*request.Email); other != nil && other.ID != userID {
			return nil, utils.ErrEmailAlreadyExists
		}
	}

	user := a.userRepo.UpdateUser(userID, db_models.UserUpdate{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
	})
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (a *AccountService) ChangePassword(ctx context.Context, userID int64, request request_models.ChangePasswordRequest) error {
	user := a.userRepo.FindByID(userID)
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.CurrentPassword); err != nil {
		return fmt.Errorf("%w: current password does not match", utils.ErrInvalidInput)
	}

	return a.setPassword(ctx, userID, request.NewPassword)
}

// ForgotPassword never reveals whether the email is registered.
func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	user := a.userRepo.FindByEmail(email)
	if user == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(resetTokenBytes)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	a.resetTokens.Set(token, user.ID, a.opts.ResetTokenTTL)
	a.notifications.Notify(ctx, user.ID, passwordResetTitle, passwordResetText)

	// no mail delivery: the token only reaches the debug log
	a.logger.Debug("password reset requested",
		zap.Int64("user_id", user.ID),
		zap.String("reset_token", token),
	)
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, request request_models.ResetPasswordRequest) error {
	userID, ok := a.resetTokens.Consume(request.Token)
	if !ok {
		return utils.ErrInvalidResetToken
	}

	return a.setPassword(ctx, userID, request.NewPassword)
}

func (a *AccountService) setPassword(ctx context.Context, userID int64, password string) error {
	hashedPassword, err := utils.HashPassword(password, a.opts.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if a.userRepo.UpdateUser(userID, db_models.UserUpdate{PasswordHash: &hashedPassword}) == nil {
		return utils.ErrUserNotFound
	}

	a.notifications.Notify(ctx, userID, passwordChangedTitle, passwordChangedText)
	return nil
}

func (a *AccountService) issue(user db_models.User) (*response_models.AuthResponse, error) {
	token, claims, err := a.tokens.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrTokenIssue, err)
	}

	return &response_models.AuthResponse{
		User:      user,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func mapUserCreateError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrUsernameTaken):
		return utils.ErrUsernameTaken
	case errors.Is(err, repositories.ErrEmailTaken):
		return utils.ErrEmailAlreadyExists
	case errors.Is(err, repositories.ErrParentLimitReached):
		return utils.ErrParentLimitReached
	default:
		return err
	}
}
