package delivery

import (
	"net/http"

	authdomain "shop-backend/internal/auth/domain"
	authdto "shop-backend/internal/auth/dto"
	"shop-backend/internal/auth/usecase"
	"shop-backend/pkg/apperr"
	"shop-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles user and session HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// ListUsers returns every account's public view
// GET /users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.NewPublicUsers(users))
}

// GetUser returns one account's public view
// GET /users/:id
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.authUsecase.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.NewPublicUser(user))
}

// Register creates an account and returns it with its first token
// POST /users
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.Validation("invalid request body"))
		return
	}

	resp, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login opens a new session
// POST /users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperr.ErrInvalidCredentials)
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout ends every session of the caller
// POST /users/logout
func (h *AuthHandler) Logout(c *gin.Context, session *authdomain.Session) {
	user, err := h.authUsecase.Logout(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.NewUserResponse(user))
}

// UpdateUser changes the caller's own email or password
// PATCH /users/:id
func (h *AuthHandler) UpdateUser(c *gin.Context, session *authdomain.Session) {
	var req authdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req = authdto.UpdateUserRequest{BindErr: err}
	}

	user, err := h.authUsecase.UpdateUser(c.Request.Context(), session, c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.NewUserResponse(user))
}

// DeleteUser removes the caller's own account
// DELETE /users/:id
func (h *AuthHandler) DeleteUser(c *gin.Context, session *authdomain.Session) {
	user, err := h.authUsecase.DeleteUser(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, authdto.NewUserResponse(user))
}
