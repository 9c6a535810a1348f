package services

import (
	"errors"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/pkg/auth"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// ErrInvalidCredentials is returned for a bad email/password pair. The login
// handler maps it to a 401 without revealing which half was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenPair is what a successful login or register returns.
type TokenPair struct {
	Token   string       `json:"token"`
	Refresh string       `json:"refreshToken"`
	User    *models.User `json:"user"`
}

// AuthService implements login and registration on top of UserService.
type AuthService struct {
	users *UserService
}

func NewAuthService(users *UserService) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the password and issues a token pair.
func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	user, err := s.users.FindByEmail(email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if user.PasswordHash == "" || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

// Register creates an account with the User role and logs it in.
func (s *AuthService) Register(name, email, password string) (*TokenPair, error) {
	user := &models.User{Name: name, Email: email, Role: models.RoleUser}
	created, err := s.users.Create(user, password)
	if err != nil {
		return nil, err
	}
	return s.issue(created)
}

// Profile returns the account behind a verified token's user id.
func (s *AuthService) Profile(userID int64) (*models.User, error) {
	return s.users.Get(userID)
}

func (s *AuthService) issue(user *models.User) (*TokenPair, error) {
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateRefreshToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Token: token, Refresh: refresh, User: user}, nil
}
