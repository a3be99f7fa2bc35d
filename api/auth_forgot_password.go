package api

import (
	"net/http"
	"time"

	"adviceglobe/globe-api/model"
	"adviceglobe/globe-api/security"
	"adviceglobe/globe-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Whatever happens past the input check, the caller sees this exact
// message. Anything else would reveal which emails are registered.
const forgotPasswordMessage = "If an account with that email exists, a password reset link has been sent."

type forgotPasswordBody struct {
	Email string `json:"email"`
}

func (a *API) AuthForgotPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Rejecting a malformed address reveals nothing about which
	// addresses are registered.
	if err := validators.EmailValidator(data.Email); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := a.DB.Where("email = ?", data.Email).First(&user).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			zap.L().Error("Failed to look up user for password reset", zap.Error(err), zap.String("requestID", requestID))
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   forgotPasswordMessage,
			"requestID": requestID,
		})
		return
	}

	token, err := security.GenerateResetToken()
	if err != nil {
		zap.L().Error("Failed to generate reset token", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusOK, gin.H{
			"message":   forgotPasswordMessage,
			"requestID": requestID,
		})
		return
	}

	exp := time.Now().Add(time.Hour)

	err = a.DB.
		Model(model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"reset_token":     token,
			"reset_token_exp": exp,
		}).
		Error
	if err != nil {
		zap.L().Error("Failed to store reset token", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusOK, gin.H{
			"message":   forgotPasswordMessage,
			"requestID": requestID,
		})
		return
	}

	if err := a.Mailer.SendPasswordReset(user.Email, token); err != nil {
		// Operators find out through the logs. The caller doesn't.
		zap.L().Error("Failed to send password reset email", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   forgotPasswordMessage,
		"requestID": requestID,
	})
}
