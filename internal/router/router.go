package router

import (
	"net/http"
	"time"

	"github.com/campushub/portal-backend/internal/config"
	"github.com/campushub/portal-backend/internal/handler"
	"github.com/campushub/portal-backend/internal/metrics"
	"github.com/campushub/portal-backend/internal/middleware"
	"github.com/campushub/portal-backend/internal/model"
	"github.com/campushub/portal-backend/internal/response"
	"github.com/campushub/portal-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Notice     *handler.NoticeHandler
	Attendance *handler.AttendanceHandler
	Leave      *handler.LeaveHandler
	Timetable  *handler.TimetableHandler
	Dashboard  *handler.DashboardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Every protected route passes the JWT check, the Redis session check and
// a role allow-list; 401 and 403 are the signals the browser client maps
// to its login and default-view redirects.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(metrics.Middleware())

	// Health check and Prometheus scrape endpoint.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)

		// Authenticated profile routes
		auth.GET("/me",
			middleware.RequireAuth(authService),
			middleware.CheckSession(authService),
			handlers.Auth.Me,
		)
		auth.POST("/logout",
			middleware.RequireAuth(authService),
			middleware.CheckSession(authService),
			handlers.Auth.Logout,
		)
	}

	// ─── 2. Protected Portal Group (JWT + Session) ─────────────────────
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequireAuth(authService),
		middleware.CheckSession(authService),
	)
	{
		// Dashboard, shaped by the caller's role.
		api.GET("/dashboard",
			middleware.RequireRole(model.RoleStudent, model.RoleTeacher),
			handlers.Dashboard.Get,
		)

		// Attendance
		api.GET("/attendance",
			middleware.RequireRole(model.RoleStudent),
			handlers.Attendance.ListOwn,
		)
		api.POST("/attendance",
			middleware.RequireRole(model.RoleTeacher),
			handlers.Attendance.Mark,
		)

		// Timetable
		api.GET("/timetable",
			middleware.RequireRole(model.RoleStudent, model.RoleTeacher),
			handlers.Timetable.Get,
		)
		api.GET("/timetable/export",
			middleware.RequireRole(model.RoleTeacher),
			handlers.Timetable.Export,
		)

		// Notices
		api.GET("/notices",
			middleware.RequireRole(model.RoleStudent, model.RoleTeacher),
			handlers.Notice.List,
		)
		api.POST("/notices",
			middleware.RequireRole(model.RoleTeacher),
			handlers.Notice.Create,
		)

		// Leave applications
		api.GET("/leaves",
			middleware.RequireRole(model.RoleStudent),
			handlers.Leave.ListOwn,
		)
		api.POST("/leaves",
			middleware.RequireRole(model.RoleStudent),
			handlers.Leave.Submit,
		)
		api.GET("/leaves/pending",
			middleware.RequireRole(model.RoleTeacher),
			handlers.Leave.ListPending,
		)
		api.POST("/leaves/:id/decision",
			middleware.RequireRole(model.RoleTeacher),
			handlers.Leave.Decide,
		)
	}

	return router
}
