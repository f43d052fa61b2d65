package services

import (
	"context"

	"familybudget/internal/models/db_models"
	"familybudget/internal/repositories"
	"familybudget/pkg/utils"
)

type NotificationServiceInterface interface {
	Notify(ctx context.Context, userID int64, title, message string) db_models.Notification
	List(ctx context.Context, actor db_models.User) []db_models.Notification
	ListUnread(ctx context.Context, actor db_models.User) []db_models.Notification
	SetRead(ctx context.Context, actor db_models.User, id int64, read bool) (*db_models.Notification, error)
	Delete(ctx context.Context, actor db_models.User, id int64) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) Notify(_ context.Context, userID int64, title, message string) db_models.Notification {
	return s.notificationRepo.CreateNotification(db_models.Notification{
		Title:   title,
		Message: message,
		UserID:  userID,
	})
}

func (s *NotificationService) List(_ context.Context, actor db_models.User) []db_models.Notification {
	return s.notificationRepo.ListByUser(actor.ID)
}

func (s *NotificationService) ListUnread(_ context.Context, actor db_models.User) []db_models.Notification {
	return s.notificationRepo.ListUnreadByUser(actor.ID)
}

// SetRead flips the read flag either way; only the recipient can see the notification.
func (s *NotificationService) SetRead(_ context.Context, actor db_models.User, id int64, read bool) (*db_models.Notification, error) {
	if err := s.ownNotification(actor, id); err != nil {
		return nil, err
	}

	n := s.notificationRepo.SetRead(id, read)
	if n == nil {
		return nil, utils.ErrNotificationNotFound
	}
	return n, nil
}

func (s *NotificationService) Delete(_ context.Context, actor db_models.User, id int64) error {
	if err := s.ownNotification(actor, id); err != nil {
		return err
	}

	if !s.notificationRepo.DeleteNotification(id) {
		return utils.ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) ownNotification(actor db_models.User, id int64) error {
	n := s.notificationRepo.FindByID(id)
	if n == nil || n.UserID != actor.ID {
		return utils.ErrNotificationNotFound
	}
	return nil
}
