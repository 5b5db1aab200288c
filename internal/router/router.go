// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "clubhub/swagger" // Register swagger docs

	"clubhub/internal/handler"
	"clubhub/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	ClubHandler       *handler.ClubHandler
	EventHandler      *handler.EventHandler
	MembershipHandler *handler.MembershipHandler
	Sessions          middleware.SessionLoader
	AuthRateLimiter   *middleware.IPRateLimiter
	Logger            *zap.Logger
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())
	r.Use(middleware.Session(cfg.Sessions))

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			limited := authRoutes.Group("")
			if cfg.AuthRateLimiter != nil {
				limited.Use(middleware.RateLimit(cfg.AuthRateLimiter))
			}
			limited.POST("/register", cfg.AuthHandler.Register)
			limited.POST("/login", cfg.AuthHandler.Login)

			authRoutes.POST("/logout", cfg.AuthHandler.Logout)
			authRoutes.GET("/status", cfg.AuthHandler.Status)
		}

		// Signed-in routes for the current user
		users := v1.Group("/users")
		users.Use(middleware.RequireSignIn())
		{
			users.GET("/me", cfg.UserHandler.GetMe)
			users.GET("/me/clubs", cfg.MembershipHandler.ListMyClubs)
		}

		// Club routes. Sign-in and admin checks happen in the services so
		// every mutating operation goes through the same gate.
		clubs := v1.Group("/clubs")
		{
			clubs.GET("", cfg.ClubHandler.ListClubs)
			clubs.POST("", cfg.ClubHandler.CreateClub)
			clubs.GET("/clubs/:query", cfg.ClubHandler.SearchClubs)

			club := clubs.Group("/:name")
			{
				club.GET("", cfg.ClubHandler.GetClub)
				club.PUT("", cfg.ClubHandler.UpdateClub)
				club.DELETE("", cfg.ClubHandler.DeleteClub)
				club.POST("/image", cfg.ClubHandler.RequestImageUpload)

				// Events
				events := club.Group("/event")
				{
					events.POST("", cfg.EventHandler.CreateEvent)
					events.GET("", cfg.EventHandler.ListEvents)
					events.GET("/:event", cfg.EventHandler.GetEvent)
					events.PUT("/:event", cfg.EventHandler.UpdateEvent)
					events.DELETE("/:event", cfg.EventHandler.DeleteEvent)
				}

				// Membership
				club.GET("/role", cfg.MembershipHandler.GetMyRole)
				club.POST("/join", cfg.MembershipHandler.JoinClub)
				club.DELETE("/join", cfg.MembershipHandler.LeaveClub)
				club.GET("/members", cfg.MembershipHandler.ListMembers)
				club.PUT("/members/:email/role", cfg.MembershipHandler.UpdateMemberRole)
			}
		}
	}

	return r
}
