package repositories

import "familybudget/internal/models/db_models"

type NotificationRepository interface {
	CreateNotification(n db_models.Notification) db_models.Notification
	FindByID(id int64) *db_models.Notification
	// ListByUser and ListUnreadByUser return newest first.
	ListByUser(userID int64) []db_models.Notification
	ListUnreadByUser(userID int64) []db_models.Notification
	SetRead(id int64, read bool) *db_models.Notification
	DeleteNotification(id int64) bool
}

type notificationRepository struct {
	notifications *collection[db_models.Notification, *db_models.Notification]
}

func NewNotificationRepository(store *Store) NotificationRepository {
	return &notificationRepository{notifications: store.notifications}
}

func (r *notificationRepository) CreateNotification(n db_models.Notification) db_models.Notification {
	return r.notifications.insert(n)
}

func (r *notificationRepository) FindByID(id int64) *db_models.Notification {
	n, _ := r.notifications.get(id)
	return n
}

func (r *notificationRepository) ListByUser(userID int64) []db_models.Notification {
	return r.notifications.filterNewest(func(n db_models.Notification) bool { return n.UserID == userID })
}

func (r *notificationRepository) ListUnreadByUser(userID int64) []db_models.Notification {
	return r.notifications.filterNewest(func(n db_models.Notification) bool {
		return n.UserID == userID && !n.IsRead
	})
}

func (r *notificationRepository) SetRead(id int64, read bool) *db_models.Notification {
	n, _ := r.notifications.update(id, func(n *db_models.Notification) { n.IsRead = read })
	return n
}

func (r *notificationRepository) DeleteNotification(id int64) bool {
	return r.notifications.remove(id)
}
