package routes

import (
	"github.com/amzproperties/amz-backend/internal/config"
	"github.com/amzproperties/amz-backend/internal/handlers"
	"github.com/amzproperties/amz-backend/internal/middleware"
	"github.com/amzproperties/amz-backend/internal/repositories"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies bundles the handlers and repositories the router needs
type HandlerDependencies struct {
	AdminRepo   repositories.AdminRepository
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Property    *handlers.PropertyHandler
	Blog        *handlers.BlogHandler
	Partner     *handlers.PartnerHandler
	Testimonial *handlers.TestimonialHandler
	Contact     *handlers.ContactHandler
	Wishlist    *handlers.WishlistHandler
	Settings    *handlers.SettingsHandler
	Stats       *handlers.StatsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps *HandlerDependencies) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Uploaded images are served straight from the upload directory
	router.Static("/uploads", cfg.Uploads.Dir)

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", deps.Health.Health)

		properties := public.Group("/properties")
		{
			properties.GET("", deps.Property.List)
			properties.GET("/:id", deps.Property.GetByID)
			properties.GET("/featured/list", deps.Property.Featured)
			properties.GET("/search/query", deps.Property.Search)
		}

		blogs := public.Group("/blogs")
		{
			blogs.GET("", deps.Blog.List)
			blogs.GET("/slug/:slug", deps.Blog.GetBySlug)
			blogs.GET("/categories/list", deps.Blog.Categories)
		}

		partners := public.Group("/partners")
		{
			partners.GET("", deps.Partner.List)
			partners.GET("/slug/:slug", deps.Partner.GetBySlug)
		}

		public.GET("/testimonials", deps.Testimonial.List)
		public.POST("/contact", deps.Contact.Submit)

		wishlist := public.Group("/wishlist")
		{
			wishlist.POST("", deps.Wishlist.Add)
			wishlist.GET("/:sessionId", deps.Wishlist.GetSession)
			wishlist.DELETE("/:sessionId/:itemId", deps.Wishlist.Remove)
		}

		public.GET("/settings", deps.Settings.Get)

		public.POST("/admin/login", deps.Auth.Login)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg, deps.AdminRepo), middleware.RequireAdmin())
	{
		admin.GET("/profile", deps.Auth.Profile)
		admin.PUT("/change-password", deps.Auth.ChangePassword)
		admin.GET("/stats", deps.Stats.Dashboard)

		properties := admin.Group("/properties")
		{
			properties.GET("", deps.Property.AdminList)
			properties.GET("/:id", deps.Property.GetByID)
			properties.POST("", deps.Property.Create)
			properties.PUT("/:id", deps.Property.Update)
			properties.DELETE("/:id", deps.Property.Delete)
		}

		blogs := admin.Group("/blogs")
		{
			blogs.GET("", deps.Blog.AdminList)
			blogs.GET("/:id", deps.Blog.GetByID)
			blogs.POST("", deps.Blog.Create)
			blogs.PUT("/:id", deps.Blog.Update)
			blogs.DELETE("/:id", deps.Blog.Delete)
		}

		partners := admin.Group("/partners")
		{
			partners.GET("", deps.Partner.AdminList)
			partners.GET("/:id", deps.Partner.GetByID)
			partners.POST("", deps.Partner.Create)
			partners.PUT("/:id", deps.Partner.Update)
			partners.DELETE("/:id", deps.Partner.Delete)
		}

		testimonials := admin.Group("/testimonials")
		{
			testimonials.GET("", deps.Testimonial.AdminList)
			testimonials.GET("/:id", deps.Testimonial.GetByID)
			testimonials.POST("", deps.Testimonial.Create)
			testimonials.PUT("/:id", deps.Testimonial.Update)
			testimonials.DELETE("/:id", deps.Testimonial.Delete)
		}

		contacts := admin.Group("/contacts")
		{
			contacts.GET("", deps.Contact.List)
			contacts.GET("/:id", deps.Contact.GetByID)
			contacts.PUT("/:id", deps.Contact.UpdateMessage)
			contacts.PUT("/:id/status", deps.Contact.UpdateStatus)
			contacts.DELETE("/:id", deps.Contact.Delete)
			contacts.GET("/stats/summary", deps.Contact.Stats)
		}

		wishlist := admin.Group("/wishlist")
		{
			wishlist.GET("/all", deps.Wishlist.AdminList)
			wishlist.GET("/stats", deps.Wishlist.Stats)
			wishlist.GET("/analytics", deps.Wishlist.Analytics)
			wishlist.DELETE("/:id", deps.Wishlist.AdminRemove)
			wishlist.DELETE("/session/:sessionId", deps.Wishlist.ClearSession)
		}

		settings := admin.Group("/settings")
		{
			settings.GET("", deps.Settings.Get)
			settings.PUT("", deps.Settings.Update)
			settings.PATCH("/:section", deps.Settings.UpdateSection)
			settings.POST("/reset", deps.Settings.Reset)
		}
	}

	return router
}
