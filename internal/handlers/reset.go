package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrithikcode/TO-DO-LIST/internal/repository"
	"github.com/hrithikcode/TO-DO-LIST/internal/service"
)

// The forgot-password response is intentionally the same whether or not the
// email exists.
const resetGenericMessage = "If an account with that email exists, a password reset link has been sent."

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h HandlerSet) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	sent, err := h.reset.RequestReset(c.Request.Context(), req.Email)
	if err != nil {
		var wrongProvider *service.WrongProviderError
		if errors.As(err, &wrongProvider) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      wrongProvider.Error() + ", please use it to sign in",
				"email_sent": false,
			})
			return
		}
		h.log.Error().Err(err).Msg("forgot password failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    resetGenericMessage,
		"email_sent": sent,
	})
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token and new password are required"})
		return
	}

	if err := h.reset.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		var wrongProvider *service.WrongProviderError
		switch {
		case errors.Is(err, service.ErrPasswordTooShort),
			errors.Is(err, service.ErrInvalidResetToken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &wrongProvider):
			c.JSON(http.StatusBadRequest, gin.H{"error": wrongProvider.Error() + ", password cannot be reset"})
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			h.log.Error().Err(err).Msg("reset password failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password has been reset successfully. You can now login with your new password.",
		"success": true,
	})
}

type verifyResetTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h HandlerSet) VerifyResetToken(c *gin.Context) {
	var req verifyResetTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": "Token is required"})
		return
	}

	email, username, err := h.reset.CheckToken(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidResetToken):
			c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": err.Error()})
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"valid": false, "error": "User not found"})
		default:
			h.log.Error().Err(err).Msg("verify reset token failed")
			c.JSON(http.StatusInternalServerError, gin.H{"valid": false, "error": "internal_server_error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":    true,
		"email":    email,
		"username": username,
	})
}
