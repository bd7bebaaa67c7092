package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/src/app/http/dto"
	"fintrack/src/core/usecase"
)

// LoginMessage is returned by POST /login whether or not a user matched.
const LoginMessage = "Login successful"

// UserHandler handles registration and login.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create registers a user.
// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login looks up a user by credentials. No match still answers 200, with a
// null user.
// POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": LoginMessage,
		"user":    user,
	})
}
