package api

import (
	"net/http"
	"time"

	"adviceglobe/globe-api/model"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

type videoCreateBody struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Platform    string            `json:"platform"`
	URL         string            `json:"url"`
	Thumbnail   *string           `json:"thumbnail"`
	Tags        model.StringSlice `json:"tags"`
	Location    string            `json:"location"`
	Lat         *float64          `json:"lat"`
	Lng         *float64          `json:"lng"`
}

func (a *API) VideoCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data videoCreateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Lat/lng bind through pointers so a legitimate 0 coordinate isn't
	// mistaken for a missing field.
	if data.Title == "" || data.Description == "" || data.Platform == "" ||
		data.URL == "" || data.Location == "" || data.Lat == nil || data.Lng == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Missing required fields",
			"requestID": requestID,
		})
		return
	}

	id, err := gonanoid.New()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate video ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	tags := data.Tags
	if tags == nil {
		tags = model.StringSlice{}
	}

	video := model.Video{
		ID:          id,
		Title:       data.Title,
		Description: data.Description,
		Platform:    data.Platform,
		URL:         data.URL,
		Thumbnail:   data.Thumbnail,
		Tags:        tags,
		Location:    data.Location,
		Lat:         *data.Lat,
		Lng:         *data.Lng,
		CreatedAt:   time.Now(),
	}

	if err := a.DB.Create(&video).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create video", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, video)
}
