package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"familybudget/internal/models/db_models"
	"familybudget/internal/models/request_models"
	"familybudget/internal/repositories"
	"familybudget/pkg/utils"
)

const welcomeMemberText = "Вы были добавлены в семью. Добро пожаловать в семейный бюджет!"

type FamilyOptions struct {
	BcryptCost int
	MaxParents int
}

type FamilyServiceInterface interface {
	GetFamily(ctx context.Context, actor db_models.User) (*db_models.Family, error)
	ListUsers(ctx context.Context, actor db_models.User) ([]db_models.User, error)
	AddUser(ctx context.Context, actor db_models.User, request request_models.AddFamilyUserRequest) (*db_models.User, error)

	ListRelatives(ctx context.Context, actor db_models.User) ([]db_models.FamilyMember, error)
	AddRelative(ctx context.Context, actor db_models.User, request request_models.FamilyMemberRequest) (*db_models.FamilyMember, error)
	UpdateRelative(ctx context.Context, actor db_models.User, id int64, request request_models.UpdateFamilyMemberRequest) (*db_models.FamilyMember, error)
	DeleteRelative(ctx context.Context, actor db_models.User, id int64) error
}

type FamilyService struct {
	familyRepo    repositories.FamilyRepository
	userRepo      repositories.UserRepository
	memberRepo    repositories.FamilyMemberRepository
	notifications NotificationServiceInterface
	opts          FamilyOptions
	logger        *zap.Logger
}

func NewFamilyService(
	familyRepo repositories.FamilyRepository,
	userRepo repositories.UserRepository,
	memberRepo repositories.FamilyMemberRepository,
	notifications NotificationServiceInterface,
	opts FamilyOptions,
	logger *zap.Logger,
) FamilyServiceInterface {
	return &FamilyService{
		familyRepo:    familyRepo,
		userRepo:      userRepo,
		memberRepo:    memberRepo,
		notifications: notifications,
		opts:          opts,
		logger:        logger,
	}
}

func (s *FamilyService) GetFamily(_ context.Context, actor db_models.User) (*db_models.Family, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}

	family := s.familyRepo.FindByID(actor.FamilyID)
	if family == nil {
		return nil, utils.ErrFamilyNotFound
	}
	return family, nil
}

func (s *FamilyService) ListUsers(_ context.Context, actor db_models.User) ([]db_models.User, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}
	return s.userRepo.ListByFamily(actor.FamilyID), nil
}

// AddUser creates an account in the caller's family. The parent cap is checked in
// the same guarded insert as username and email uniqueness.
func (s *FamilyService) AddUser(ctx context.Context, actor db_models.User, request request_models.AddFamilyUserRequest) (*db_models.User, error) {
	if err := requireParent(actor); err != nil {
		return nil, err
	}

	role := db_models.RoleUser
	if request.Role == string(db_models.RoleParent) {
		role = db_models.RoleParent
	}

	hashedPassword, err := utils.HashPassword(request.Password, s.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepo.CreateUserUnique(db_models.User{
		Username:     request.Username,
		PasswordHash: hashedPassword,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		Role:         role,
		FamilyID:     actor.FamilyID,
	}, s.opts.MaxParents)
	if err != nil {
		return nil, mapUserCreateError(err)
	}

	s.notifications.Notify(ctx, user.ID, welcomeTitle, welcomeMemberText)
	s.logger.Info("family user added",
		zap.Int64("user_id", user.ID),
		zap.Int64("family_id", user.FamilyID),
		zap.String("role", string(user.Role)),
		zap.Int64("added_by", actor.ID),
	)

	return &user, nil
}

func (s *FamilyService) ListRelatives(_ context.Context, actor db_models.User) ([]db_models.FamilyMember, error) {
	if err := requireFamily(actor); err != nil {
		return nil, err
	}
	return s.memberRepo.ListByFamily(actor.FamilyID), nil
}

func (s *FamilyService) AddRelative(_ context.Context, actor db_models.User, request request_models.FamilyMemberRequest) (*db_models.FamilyMember, error) {
	if err := requireParent(actor); err != nil {
		return nil, err
	}
	if request.Age == nil {
		return nil, fmt.Errorf("%w: age is required", utils.ErrInvalidInput)
	}
	if err := s.checkLinkedUser(actor, request.UserID); err != nil {
		return nil, err
	}

	member := s.memberRepo.CreateMember(db_models.FamilyMember{
		Name:     request.Name,
		Relation: request.Relation,
		Age:      *request.Age,
		UserID:   request.UserID,
		FamilyID: actor.FamilyID,
	})
	return &member, nil
}

func (s *FamilyService) UpdateRelative(_ context.Context, actor db_models.User, id int64, request request_models.UpdateFamilyMemberRequest) (*db_models.FamilyMember, error) {
	if err := requireParent(actor); err != nil {
		return nil, err
	}
	if err := s.ownRelative(actor, id); err != nil {
		return nil, err
	}
	if request.UnlinkUser && request.UserID != nil {
		return nil, fmt.Errorf("%w: userId and unlinkUser are mutually exclusive", utils.ErrInvalidInput)
	}
	if err := s.checkLinkedUser(actor, request.UserID); err != nil {
		return nil, err
	}

	member := s.memberRepo.UpdateMember(id, db_models.FamilyMemberUpdate{
		Name:        request.Name,
		Relation:    request.Relation,
		Age:         request.Age,
		UserID:      request.UserID,
		ClearUserID: request.UnlinkUser,
	})
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}
	return member, nil
}

func (s *FamilyService) DeleteRelative(_ context.Context, actor db_models.User, id int64) error {
	if err := requireParent(actor); err != nil {
		return err
	}
	if err := s.ownRelative(actor, id); err != nil {
		return err
	}

	if !s.memberRepo.DeleteMember(id) {
		return utils.ErrMemberNotFound
	}
	return nil
}

func (s *FamilyService) ownRelative(actor db_models.User, id int64) error {
	m := s.memberRepo.FindByID(id)
	if m == nil || m.FamilyID != actor.FamilyID {
		return utils.ErrMemberNotFound
	}
	return nil
}

// checkLinkedUser allows linking a relative only to an account of the same family.
func (s *FamilyService) checkLinkedUser(actor db_models.User, userID *int64) error {
	if userID == nil {
		return nil
	}
	u := s.userRepo.FindByID(*userID)
	if u == nil || u.FamilyID != actor.FamilyID {
		return utils.ErrUserNotFound
	}
	return nil
}
