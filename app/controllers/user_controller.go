package controllers

import (
	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/ctx"
	"github.com/shashiranjanraj/bizdesk/pkg/resource"
)

// UserController serves /api/users. Responses go through UserResource so the
// password hash never leaves the API.
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// UserInput is the write shape for user endpoints. Password is optional and
// only ever accepted, never returned.
type UserInput struct {
	Name     string `json:"name"     validate:"required,max=255"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"role"     validate:"nullable,in=User,Admin"`
	Password string `json:"password" validate:"nullable,min=8"`
}

// UserResource strips the password hash. It handles both the typed model
// (single responses) and the decoded map (collection responses).
type UserResource struct{ resource.Base }

func (UserResource) ToArray(v interface{}) resource.Map {
	switch u := v.(type) {
	case *models.User:
		return resource.Map{"id": u.ID, "name": u.Name, "email": u.Email, "role": u.Role}
	case map[string]interface{}:
		return resource.Map{"id": u["id"], "name": u["name"], "email": u["email"], "role": u["role"]}
	}
	return resource.Map{}
}

func (uc *UserController) Index(c *ctx.Context) {
	users, err := uc.users.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	resource.CollectionOf(UserResource{}, users).Respond(c.W)
}

func (uc *UserController) Show(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	u, err := uc.users.Get(id)
	if err != nil {
		respondErr(c, err)
		return
	}
	resource.New(UserResource{}, u).Respond(c.W)
}

func (uc *UserController) Store(c *ctx.Context) {
	var in UserInput
	if !c.BindJSON(&in) {
		return
	}
	u := &models.User{Name: in.Name, Email: in.Email, Role: in.Role}
	created, err := uc.users.Create(u, in.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Created(UserResource{}.ToArray(created))
}

func (uc *UserController) Update(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in UserInput
	if !c.BindJSON(&in) {
		return
	}
	u := &models.User{Name: in.Name, Email: in.Email, Role: in.Role}
	updated, err := uc.users.Update(id, u, in.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Success(UserResource{}.ToArray(updated))
}

func (uc *UserController) Destroy(c *ctx.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := uc.users.Delete(id); err != nil {
		respondErr(c, err)
		return
	}
	c.Success(map[string]any{"deleted": id})
}
