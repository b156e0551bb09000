package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/alumnet/backend/internal/app/controllers"
	"github.com/alumnet/backend/internal/middleware"
	"github.com/alumnet/backend/internal/pkg/apperrors"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Event       *controllers.EventController
	News        *controllers.NewsController
	Forum       *controllers.ForumController
	Gallery     *controllers.GalleryController
	BoardMinute *controllers.BoardMinuteController
	Donation    *controllers.DonationController
	Health      *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/ping", c.Health.Ping)
	router.NoRoute(func(ctx *gin.Context) {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("Route not found"))
	})

	api := router.Group("/api")
	api.GET("/health", c.Health.Health)

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", c.Auth.Signup)
		auth.POST("/login", c.Auth.Login)
	}
	api.GET("/events", c.Event.ListEvents)
	api.GET("/news", c.News.ListNews)
	api.GET("/gallery", c.Gallery.ListGallery)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", c.User.GetProfile)
		authenticated.PUT("/profile", c.User.UpdateProfile)
		authenticated.GET("/directory", c.User.Directory)

		authenticated.POST("/events", c.Event.CreateEvent)

		forums := authenticated.Group("/forums")
		{
			forums.GET("", c.Forum.ListThreads)
			forums.POST("", c.Forum.CreateThread)
			forums.GET("/:id", c.Forum.GetThread)
			forums.POST("/:id/reply", c.Forum.Reply)
		}

		authenticated.POST("/gallery", c.Gallery.Upload)
		authenticated.GET("/board-minutes", c.BoardMinute.ListMinutes)

		donations := authenticated.Group("/donations")
		{
			donations.POST("/create-payment", c.Donation.CreatePayment)
			donations.GET("/verify/:reference", c.Donation.VerifyPayment)
		}
	}

	// --- Admin routes ---
	admin := authenticated.Group("")
	admin.Use(authMiddleware.AdminOnly())
	{
		admin.POST("/news", c.News.CreateNews)
		admin.POST("/board-minutes", c.BoardMinute.Publish)
		admin.GET("/donations", c.Donation.ListDonations)
		admin.GET("/admin/users", c.User.ListUsers)
		admin.PUT("/admin/users/:id", c.User.SetApproval)
	}
}
