package controllers

import (
	"errors"

	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/ctx"
	"github.com/shashiranjanraj/bizdesk/pkg/middleware"
)

// AuthController serves /api/auth: login, register, profile.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerInput struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (ac *AuthController) Login(c *ctx.Context) {
	var in loginInput
	if !c.BindJSON(&in) {
		return
	}

	pair, err := ac.auth.Login(in.Email, in.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.Unauthorized("Invalid email or password")
		return
	}
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(sanitizePair(pair))
}

func (ac *AuthController) Register(c *ctx.Context) {
	var in registerInput
	if !c.BindJSON(&in) {
		return
	}

	pair, err := ac.auth.Register(in.Name, in.Email, in.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(sanitizePair(pair))
}

// Profile returns the account behind the bearer token.
func (ac *AuthController) Profile(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.R)
	if !ok {
		c.Unauthorized()
		return
	}

	user, err := ac.auth.Profile(userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(UserResource{}.ToArray(user))
}

func sanitizePair(pair *services.TokenPair) map[string]any {
	return map[string]any{
		"token":        pair.Token,
		"refreshToken": pair.Refresh,
		"user":         UserResource{}.ToArray(pair.User),
	}
}
