package api

import (
	"net/http"

	"adviceglobe/globe-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) VideoDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	videoID := c.Param("id")

	res := a.DB.
		Where("id = ?", videoID).
		Delete(model.Video{})
	if res.Error != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete video", zap.Error(res.Error), zap.String("requestID", requestID))
		return
	}

	if res.RowsAffected == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     "Video not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Video deleted successfully",
		"requestID": requestID,
	})
}
