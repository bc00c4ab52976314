package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furnishfusion/storefront/internal/usecase"
)

// AuthHandler serves registration, login and the account dashboard.
type AuthHandler struct {
	auth *usecase.AuthUseCase
}

func NewAuthHandler(auth *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful! Please login."})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	user, err := h.auth.Login(c.Request.Context(), sessionFrom(c), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Welcome back, " + user.Name + "!", "user": user})
}

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	admin, err := h.auth.AdminLogin(c.Request.Context(), sessionFrom(c), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin login successful", "admin": admin})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(sessionFrom(c))
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Dashboard(c *gin.Context) {
	sess := sessionFrom(c)
	dash, err := h.auth.Dashboard(c.Request.Context(), sess.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}
