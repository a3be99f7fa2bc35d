// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"adviceglobe/globe-api/db"
	"adviceglobe/globe-api/middleware"
	"adviceglobe/globe-api/model"
	"adviceglobe/globe-api/security"
	"adviceglobe/globe-api/service"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Tokens *security.TokenManager
	Mailer service.Mailer
}

func NewRouter() (*API, error) {
	a := &API{}

	d, err := db.New(viper.GetString("db.path"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite database, %w", err)
	}
	a.DB = d

	tm, err := security.NewTokenManager(viper.GetString("jwt.secret"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token manager, %w", err)
	}
	a.Tokens = tm

	a.Mailer = service.NewSMTPMailer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		viper.GetString("mail.sender_address"),
		viper.GetString("mail.password"),
		viper.GetString("app.base_url"),
	)

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	admin := middleware.NewAuthMiddleware(tm, model.RoleAdmin)

	// HEAD /heartbeat 	-> Used to check if the server is alive
	router.HEAD("/heartbeat", a.Heartbeat)

	auth := router.Group("/auth",
		middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RequestsPerSecond: 2,
			Burst:             5,
		}),
		middleware.BodySizeLimiter(1<<20),
	)
	{
		// POST /auth/login			-> Logs in a user and returns a signed token
		auth.POST("/login", a.AuthLogin)

		// POST /auth/forgot-password		-> Starts the password reset flow
		auth.POST("/forgot-password", a.AuthForgotPassword)

		// POST /auth/reset-password		-> Completes the password reset flow
		auth.POST("/reset-password", a.AuthResetPassword)
	}

	videos := router.Group("/videos")
	{
		// GET /videos 			-> Returns the filtered, paginated catalog
		videos.GET("", cacheFor(30), a.VideoList)

		// POST /videos 		-> Creates a new video entry
		videos.POST("", admin, middleware.BodySizeLimiter(1<<20), a.VideoCreate)

		// PUT /videos/:id 		-> Updates the supplied fields of a video entry
		videos.PUT("/:id", admin, middleware.BodySizeLimiter(1<<20), a.VideoUpdate)

		// DELETE /videos/:id 		-> Deletes a video entry
		videos.DELETE("/:id", admin, a.VideoDelete)
	}

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
