package repositories

import (
	"strings"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/pkg/collection"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// UserRepository layers auth-specific lookups over the users collection.
type UserRepository struct {
	Repository[*models.User]
}

func NewUserRepository(repo Repository[*models.User]) *UserRepository {
	return &UserRepository{Repository: repo}
}

// FindByEmail looks up a user by email, case-insensitively. The collection is
// small (it is a settings page, not a directory), so a scan is fine on every
// driver.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	users, err := r.All()
	if err != nil {
		return nil, err
	}
	u, ok := collection.First(users, func(u *models.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}
