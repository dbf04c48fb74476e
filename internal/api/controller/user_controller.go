package controller

import (
	"errors"
	"net/http"

	"mliou521/Inkwell/internal/api/models"
	"mliou521/Inkwell/internal/api/response"
	"mliou521/Inkwell/internal/api/service"
	"mliou521/Inkwell/internal/api/validator"

	"github.com/gin-gonic/gin"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// Register handles POST /users. A successful registration responds with the
// freshly created session, so no separate login round-trip is needed.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.Messages(err))
		return
	}

	session, err := uc.userService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.ValidationErrors(c, map[string]string{"username": "is already taken"})
			return
		}
		renderError(c, err, "User")
		return
	}

	response.OK(c, session)
}

// Login handles POST /auth/login.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.Messages(err))
		return
	}

	session, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Message(c, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		renderError(c, err, "User")
		return
	}

	response.OK(c, session)
}

// Get handles GET /users/:id.
func (uc *UserController) Get(c *gin.Context) {
	user, err := uc.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err, "User")
		return
	}

	response.OK(c, user)
}

// Update handles PUT /users/:id.
func (uc *UserController) Update(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, validator.Messages(err))
		return
	}

	user, err := uc.userService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		renderError(c, err, "User")
		return
	}

	response.OK(c, user)
}

// Delete handles DELETE /users/:id, used by cleanup flows. Deletion is
// idempotent.
func (uc *UserController) Delete(c *gin.Context) {
	if err := uc.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, err, "User")
		return
	}

	response.Message(c, http.StatusOK, "User deleted")
}
