package api

import (
	"net/http"

	"adviceglobe/globe-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type videoUpdateBody struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Platform    *string            `json:"platform"`
	URL         *string            `json:"url"`
	Thumbnail   *string            `json:"thumbnail"`
	Tags        *model.StringSlice `json:"tags"`
	Location    *string            `json:"location"`
	Lat         *float64           `json:"lat"`
	Lng         *float64           `json:"lng"`
}

// VideoUpdate only touches the fields present in the request body.
func (a *API) VideoUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	videoID := c.Param("id")

	var data videoUpdateBody
	if err := c.BindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var video model.Video

	err := a.DB.
		Where("id = ?", videoID).
		First(&video).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Video not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch video", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Title != nil {
		video.Title = *data.Title
	}
	if data.Description != nil {
		video.Description = *data.Description
	}
	if data.Platform != nil {
		video.Platform = *data.Platform
	}
	if data.URL != nil {
		video.URL = *data.URL
	}
	if data.Thumbnail != nil {
		video.Thumbnail = data.Thumbnail
	}
	if data.Tags != nil {
		video.Tags = *data.Tags
	}
	if data.Location != nil {
		video.Location = *data.Location
	}
	if data.Lat != nil {
		video.Lat = *data.Lat
	}
	if data.Lng != nil {
		video.Lng = *data.Lng
	}

	if err := a.DB.Save(&video).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update video", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, video)
}
