package db

import (
	"fmt"
	"time"

	"adviceglobe/globe-api/model"
	"adviceglobe/globe-api/security"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	seedAdminEmail    = "admin@adviceglobe.com"
	seedAdminPassword = "admin123" // Change this after the first login
)

var seedVideos = []model.Video{
	{
		Title:       "Life Advice from Tokyo",
		Description: "A heartwarming message about finding balance in life, shared from the bustling streets of Tokyo. This video explores the Japanese concept of Ikigai and how to find your life's purpose.",
		Platform:    "youtube",
		URL:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Thumbnail:   ptr("https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"),
		Tags:        model.StringSlice{"life-advice", "balance", "ikigai", "japan"},
		Location:    "Tokyo, Japan",
		Lat:         35.6762,
		Lng:         139.6503,
	},
	{
		Title:       "Wisdom from New York",
		Description: "Street wisdom from the Big Apple about pursuing your dreams and never giving up. A motivational message from someone who made it in the city that never sleeps.",
		Platform:    "tiktok",
		URL:         "https://www.tiktok.com/@example/video/1234567890",
		Tags:        model.StringSlice{"motivation", "dreams", "nyc", "success"},
		Location:    "New York, USA",
		Lat:         40.7128,
		Lng:         -74.0060,
	},
	{
		Title:       "Mindfulness from Bali",
		Description: "Peaceful advice about living in the moment and appreciating nature, shared from the beautiful beaches of Bali. Learn about mindfulness practices and meditation.",
		Platform:    "instagram",
		URL:         "https://www.instagram.com/p/example123/",
		Tags:        model.StringSlice{"mindfulness", "nature", "meditation", "bali"},
		Location:    "Bali, Indonesia",
		Lat:         -8.4095,
		Lng:         115.1889,
	},
	{
		Title:       "Startup Advice from London",
		Description: "Entrepreneurial wisdom from London's tech scene. Tips on building a startup, managing team, and staying resilient through challenges.",
		Platform:    "youtube",
		URL:         "https://www.youtube.com/watch?v=example456",
		Tags:        model.StringSlice{"entrepreneurship", "startup", "business", "london"},
		Location:    "London, UK",
		Lat:         51.5074,
		Lng:         -0.1278,
	},
	{
		Title:       "Family Values from Mumbai",
		Description: "Touching advice about family relationships and cultural values, shared from the vibrant city of Mumbai. How to balance tradition with modern life.",
		Platform:    "youtube",
		URL:         "https://www.youtube.com/watch?v=example789",
		Tags:        model.StringSlice{"family", "values", "culture", "mumbai"},
		Location:    "Mumbai, India",
		Lat:         19.0760,
		Lng:         72.8777,
	},
}

// Seed creates the admin account and the sample catalog. Safe to run
// more than once, existing records are left alone.
func Seed(d *gorm.DB) error {
	var count int64

	err := d.Model(model.User{}).
		Where("email = ?", seedAdminEmail).
		Count(&count).
		Error
	if err != nil {
		return fmt.Errorf("failed to check for admin user, %w", err)
	}

	if count == 0 {
		hash, err := security.HashPassword(seedAdminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password, %w", err)
		}

		adminID, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate admin ID, %w", err)
		}

		err = d.Create(&model.User{
			ID:           adminID,
			Email:        seedAdminEmail,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
		}).Error
		if err != nil {
			return fmt.Errorf("failed to create admin user, %w", err)
		}

		zap.L().Info("Created admin user", zap.String("email", seedAdminEmail))
	} else {
		zap.L().Info("Admin user already exists", zap.String("email", seedAdminEmail))
	}

	for _, video := range seedVideos {
		err := d.Model(model.Video{}).
			Where("title = ?", video.Title).
			Count(&count).
			Error
		if err != nil {
			return fmt.Errorf("failed to check for sample video, %w", err)
		}

		if count > 0 {
			continue
		}

		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate video ID, %w", err)
		}

		video.ID = id
		video.CreatedAt = time.Now()

		if err := d.Create(&video).Error; err != nil {
			return fmt.Errorf("failed to create sample video, %w", err)
		}

		zap.L().Info("Created sample video", zap.String("title", video.Title))
	}

	return nil
}

func ptr(s string) *string {
	return &s
}
