package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campushub/portal-backend/internal/config"
	"github.com/campushub/portal-backend/internal/database"
	"github.com/campushub/portal-backend/internal/handler"
	"github.com/campushub/portal-backend/internal/logger"
	"github.com/campushub/portal-backend/internal/repository"
	"github.com/campushub/portal-backend/internal/router"
	"github.com/campushub/portal-backend/internal/service"
	"github.com/campushub/portal-backend/internal/validator"
	"github.com/campushub/portal-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Campus Portal Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	leaveRepo := repository.NewLeaveRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	userService := service.NewUserService(userRepo)
	noticeService := service.NewNoticeService(noticeRepo, service.NewRedisBoardCache(rdb), cfg, log)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	leaveService := service.NewLeaveService(leaveRepo, log)
	timetableService := service.NewTimetableService(timetableRepo)
	dashboardService := service.NewDashboardService(
		attendanceService, timetableService, noticeService, leaveService, dashboardRepo, log,
	)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, userService),
		Notice:     handler.NewNoticeHandler(noticeService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Leave:      handler.NewLeaveHandler(leaveService),
		Timetable:  handler.NewTimetableHandler(timetableService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	// ─── Start Maintenance Worker ─────────────────────────────────────
	maintenance := worker.NewMaintenanceWorker(noticeService, leaveService, log)
	if err := maintenance.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start maintenance worker")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	maintenance.Stop()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
