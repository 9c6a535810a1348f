package services

import (
	"time"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
)

// maxNotifications caps the bell list; older entries are dropped first.
const maxNotifications = 50

// NotificationService manages the header-bell feed. Entries are appended by
// event listeners, read by the header, and cleared in bulk.
type NotificationService struct {
	notifications repositories.Repository[*models.Notification]
}

func NewNotificationService(notifications repositories.Repository[*models.Notification]) *NotificationService {
	return &NotificationService{notifications: notifications}
}

func (s *NotificationService) List() ([]*models.Notification, error) {
	return s.notifications.All()
}

// Add appends an entry and trims the feed to the cap.
func (s *NotificationService) Add(kind, message string) (*models.Notification, error) {
	n := &models.Notification{
		Type:      kind,
		Message:   message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	created, err := s.notifications.Create(n)
	if err != nil {
		return nil, err
	}

	all, err := s.notifications.All()
	if err != nil {
		return created, nil // the entry is in; trimming is best-effort
	}
	for len(all) > maxNotifications {
		if err := s.notifications.Delete(all[0].ID); err != nil {
			break
		}
		all = all[1:]
	}
	return created, nil
}

// Clear empties the feed.
func (s *NotificationService) Clear() error {
	all, err := s.notifications.All()
	if err != nil {
		return err
	}
	for _, n := range all {
		if err := s.notifications.Delete(n.ID); err != nil {
			return err
		}
	}
	return nil
}
