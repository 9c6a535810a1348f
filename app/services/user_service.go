package services

import (
	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
	"github.com/shashiranjanraj/bizdesk/pkg/auth"
	"github.com/shashiranjanraj/bizdesk/pkg/event"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// UserService manages accounts. Passwords arrive in plain text from the API
// boundary and are bcrypt-hashed here; the hash never leaves through the
// user resource.
type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List() ([]*models.User, error) {
	return s.users.All()
}

func (s *UserService) Get(id int64) (*models.User, error) {
	return s.users.Find(id)
}

// Create adds an account. An empty password is allowed (admin-created stub
// accounts cannot log in until one is set).
func (s *UserService) Create(u *models.User, password string) (*models.User, error) {
	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}

	created, err := s.users.Create(u)
	if err != nil {
		return nil, err
	}
	event.Fire("user.created", created)
	return created, nil
}

// Update replaces an account. An empty password keeps the existing hash; an
// empty role keeps the existing role.
func (s *UserService) Update(id int64, u *models.User, password string) (*models.User, error) {
	existing, err := s.users.Find(id)
	if err != nil {
		return nil, err
	}

	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	} else {
		u.PasswordHash = existing.PasswordHash
	}
	if u.Role == "" {
		u.Role = existing.Role
	}

	updated, err := s.users.Update(id, u)
	if err != nil {
		return nil, err
	}
	event.Fire("user.updated", updated)
	return updated, nil
}

func (s *UserService) Delete(id int64) error {
	if err := s.users.Delete(id); err != nil {
		return err
	}
	event.Fire("user.deleted", id)
	return nil
}

// FindByEmail is used by the auth flow.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, store.ErrNotFound
	}
	return u, nil
}
