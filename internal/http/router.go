package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"booststudio/internal/auth"
	intconfig "booststudio/internal/config"
	h "booststudio/internal/http/handlers"
	"booststudio/internal/http/middleware"
	"booststudio/internal/repositories"
	"booststudio/internal/services"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the route tree needs; built once in main.
type Deps struct {
	Env      intconfig.Env
	Sessions *auth.SessionStore
	Uploader services.Uploader
	Admin    *services.AdminService

	ReservationRepo repositories.ReservationRepository
	MediaRepo       repositories.MediaRepository
}

func NewRouter(d Deps) *gin.Engine {
	dev := d.Env.IsDevelopment()

	system := h.SystemHandler{StartedAt: time.Now()}
	reservations := h.ReservationHandler{Repo: d.ReservationRepo, Dev: dev}
	media := h.MediaHandler{Repo: d.MediaRepo, Uploader: d.Uploader, Dev: dev}
	uploads := h.UploadHandler{Uploader: d.Uploader, Dev: dev}
	admin := h.AdminHandler{
		Svc:             d.Admin,
		ReservationRepo: d.ReservationRepo,
		MediaRepo:       d.MediaRepo,
		Dev:             dev,
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(d.Env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	// monitoring probe lives outside /api
	r.GET("/health", system.Monitoring)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", system.Health)

		// Public booking routes. Status update and delete are mounted here
		// unauthenticated, matching the admin set below.
		res := apiGroup.Group("/reservations")
		res.POST("", reservations.Create)
		res.GET("", reservations.List)
		res.GET("/:id", reservations.Get)
		res.PATCH("/:id/status", reservations.UpdateStatus)
		res.DELETE("/:id", reservations.Delete)

		// Raw pass-through uploads (no catalog row)
		up := apiGroup.Group("/uploads")
		up.POST("/image", uploads.Image)
		up.POST("/video", uploads.Video)

		// Public gallery
		apiGroup.GET("/media", media.List)

		adminGroup := apiGroup.Group("/admin")
		adminGroup.POST("/login", admin.Login)

		protected := adminGroup.Group("")
		protected.Use(middleware.RequireAdmin(d.Sessions))
		protected.POST("/logout", admin.Logout)
		protected.GET("/dashboard/stats", admin.DashboardStats)

		protected.GET("/reservations", reservations.List)
		protected.PATCH("/reservations/:id/status", reservations.UpdateStatus)
		protected.DELETE("/reservations/:id", reservations.Delete)
		protected.GET("/reservations/:id/quote-pdf", admin.QuotePDF)

		protected.GET("/media", media.List)
		protected.POST("/media", media.Upload)
		protected.PATCH("/media/:id", media.Update)
		protected.DELETE("/media/:id", media.Delete)
	}

	return r
}
