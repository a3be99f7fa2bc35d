package api

import (
	"net/http"
	"strconv"
	"strings"

	"adviceglobe/globe-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) VideoList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Page is not a valid positive integer",
			"requestID": requestID,
		})
		return
	}

	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Limit is not a valid positive integer",
			"requestID": requestID,
		})
		return
	}

	if limit > 100 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Limit can't be bigger than 100",
			"requestID": requestID,
		})
		return
	}

	q := a.DB.Model(model.Video{})

	if platform := c.Query("platform"); platform != "" {
		q = q.Where("platform = ?", platform)
	}

	if location := c.Query("location"); location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	// Tags live in one comma-joined column, so a video matches when any
	// requested tag appears between separators.
	if tagsParam := c.Query("tags"); tagsParam != "" {
		conds := make([]string, 0)
		args := make([]any, 0)

		for _, tag := range strings.Split(tagsParam, ",") {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				continue
			}

			conds = append(conds, "(',' || tags || ',') LIKE ?")
			args = append(args, "%,"+tag+",%")
		}

		if len(conds) > 0 {
			q = q.Where(strings.Join(conds, " OR "), args...)
		}
	}

	var total int64

	if err := q.Count(&total).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to count videos", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	videos := []model.Video{}

	err = q.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videos).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch videos", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}

	c.JSON(http.StatusOK, gin.H{
		"videos": videos,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
			"pages": pages,
		},
	})
}
