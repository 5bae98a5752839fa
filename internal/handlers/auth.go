package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrithikcode/TO-DO-LIST/internal/identity"
	"github.com/hrithikcode/TO-DO-LIST/internal/middleware"
	"github.com/hrithikcode/TO-DO-LIST/internal/models"
	"github.com/hrithikcode/TO-DO-LIST/internal/repository"
	"github.com/hrithikcode/TO-DO-LIST/internal/security"
	"github.com/hrithikcode/TO-DO-LIST/internal/service"
)

type userResponse struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture *string   `json:"profile_picture"`
	AuthProvider   string    `json:"auth_provider"`
	CreatedAt      time.Time `json:"created_at"`
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		AuthProvider:   string(user.AuthProvider),
		CreatedAt:      user.CreatedAt,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email, and password are required"})
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername),
			errors.Is(err, repository.ErrDuplicateEmail),
			errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Msg("register failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User registered successfully",
		"access_token": result.Token,
		"user":         toUserResponse(result.User),
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": result.Token,
		"user":         toUserResponse(result.User),
	})
}

type googleAuthRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h HandlerSet) GoogleAuth(c *gin.Context) {
	var req googleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Google token is required"})
		return
	}

	result, created, err := h.auth.GoogleAuth(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidAssertion):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Google token"})
		case errors.Is(err, service.ErrEmailRegisteredLocally):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.Error().Err(err).Msg("google auth failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		}
		return
	}

	status := http.StatusOK
	message := "Login successful"
	if created {
		status = http.StatusCreated
		message = "User registered successfully"
	}

	c.JSON(status, gin.H{
		"message":      message,
		"access_token": result.Token,
		"user":         toUserResponse(result.User),
	})
}

// Logout is idempotent: revoking an already-revoked token succeeds. It
// parses the bearer token itself instead of using the auth middleware,
// which would reject the second call as revoked.
func (h HandlerSet) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
		return
	}

	err := h.auth.Logout(c.Request.Context(), strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		switch {
		case errors.Is(err, security.ErrTokenExpired), errors.Is(err, security.ErrTokenMalformed):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
		default:
			h.log.Error().Err(err).Msg("logout failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (h HandlerSet) Me(c *gin.Context) {
	user := c.MustGet(middleware.ContextUser).(models.User)
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}
