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

type resetPasswordBody struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (a *API) AuthResetPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data resetPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Token == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Token field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var user model.User

	err := a.DB.Where("reset_token = ?", data.Token).First(&user).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up reset token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid or expired reset token",
			"requestID": requestID,
		})
		return
	}

	// The exp column is always written together with the token, but a
	// record that somehow lost it must not grant a reset.
	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid or expired reset token",
			"requestID": requestID,
		})
		return
	}

	hash, err := security.HashPassword(data.Password)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash new password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Keyed on the token value so two racing confirmations can't both
	// succeed. Whoever loses sees zero rows and the generic rejection.
	res := a.DB.
		Model(model.User{}).
		Where("id = ? AND reset_token = ?", user.ID, data.Token).
		Updates(map[string]any{
			"password_hash":   hash,
			"reset_token":     nil,
			"reset_token_exp": nil,
		})
	if res.Error != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update password", zap.Error(res.Error), zap.String("requestID", requestID))
		return
	}

	if res.RowsAffected == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid or expired reset token",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Password has been reset successfully",
		"requestID": requestID,
	})
}
