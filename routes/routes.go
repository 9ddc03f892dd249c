package routes

import (
	"net/http"
	"time"

	"consultly/handlers"
	"consultly/middleware"
	"consultly/models"
	"consultly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes wires account signup, signin and token revocation.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.SigninHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/revoke", hb.Auth.RevokeTokenHandler)
	}
}

// RegisterUserRoutes wires profile endpoints plus the admin account views.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Users.GetProfileHandler)
		api.PUT("/me", hb.Users.UpdateProfileHandler)
		api.PUT("/me/password", hb.Users.ChangePasswordHandler)
		api.POST("/me/image", hb.Users.UploadProfileImageHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		admin.GET("", hb.Users.ListUsersHandler)
		admin.GET("/:id", hb.Users.GetUserByIDHandler)
		admin.DELETE("/:id", hb.Users.DeleteUserHandler)
	}
}

// RegisterBookingRoutes wires the booking lifecycle and payment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("", hb.Bookings.ListBookingsHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
		api.PUT("/:id", hb.Bookings.UpdateBookingHandler)
		api.DELETE("/:id", hb.Bookings.DeleteBookingHandler)
	}

	payments := r.Group("/api/payments")
	{
		payments.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		payments.POST("/intent", hb.Bookings.CreatePaymentIntentHandler)
		payments.POST("/confirm", hb.Bookings.ConfirmPaymentHandler)
	}
}

// RegisterCatalogRoutes wires the service catalog. Reads are public so the
// booking page can render without a session; writes stay with providers
// and admins.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.ListServicesHandler)
		api.GET("/:id", hb.Catalog.GetServiceHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", middleware.RequireRoles(models.RoleProvider, models.RoleAdmin), hb.Catalog.CreateServiceHandler)
		protected.PUT("/:id", middleware.RequireRoles(models.RoleProvider, models.RoleAdmin), hb.Catalog.UpdateServiceHandler)
		protected.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin), hb.Catalog.DeleteServiceHandler)
	}
}

// RegisterNoteRoutes wires consultation notes. Only providers author them.
func RegisterNoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notes")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/:id", hb.Notes.GetNoteHandler)
		api.GET("/user/:userId", hb.Notes.ListNotesByUserHandler)
		api.GET("/booking/:bookingId", hb.Notes.ListNotesByBookingHandler)

		provider := api.Group("")
		provider.Use(middleware.RequireRoles(models.RoleProvider, models.RoleAdmin))
		provider.POST("", hb.Notes.CreateNoteHandler)
		provider.PUT("/:id", hb.Notes.UpdateNoteHandler)
		provider.DELETE("/:id", hb.Notes.DeleteNoteHandler)
	}
}

// RegisterResumeRoutes wires the caller's own resume document.
func RegisterResumeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/resumes")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.PUT("/me", hb.Resumes.UpsertResumeHandler)
		api.GET("/me", hb.Resumes.GetResumeHandler)
		api.GET("/me/pdf", hb.Resumes.DownloadResumePDFHandler)
		api.DELETE("/me", hb.Resumes.DeleteResumeHandler)
	}
}

// RegisterWebhookRoutes wires provider callbacks. These are unauthenticated
// by the JWT layer; the handler verifies the provider's signature scheme.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/webhooks")
	{
		api.POST("/zoom", hb.Webhooks.ZoomWebhookHandler)
	}
}

// RegisterAdminRoutes wires the admin dashboard.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleAdmin))
		api.GET("/dashboard", hb.Admin.DashboardHandler)
	}
}

// RegisterHealthRoute exposes the liveness snapshot kept by the health monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes applies the global middleware and mounts every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterNoteRoutes(r, hb)
	RegisterResumeRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
