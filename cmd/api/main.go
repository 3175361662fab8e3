package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/baymax-health/internal/audit"
	"github.com/BruksfildServices01/baymax-health/internal/cache"
	"github.com/BruksfildServices01/baymax-health/internal/config"
	dbpkg "github.com/BruksfildServices01/baymax-health/internal/db"
	"github.com/BruksfildServices01/baymax-health/internal/domain/reminder"
	infraRepo "github.com/BruksfildServices01/baymax-health/internal/infra/repository"
	"github.com/BruksfildServices01/baymax-health/internal/notify"
	"github.com/BruksfildServices01/baymax-health/internal/routes"
	"github.com/BruksfildServices01/baymax-health/internal/scheduler"
	"github.com/BruksfildServices01/baymax-health/internal/storage"
	"github.com/BruksfildServices01/baymax-health/internal/timezone"
)

const shutdownTimeout = 15 * time.Second

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	if !timezone.IsValid(cfg.SchedulerTimezone) {
		log.Printf("SCHEDULER_TIMEZONE %q not loadable, falling back to %s", cfg.SchedulerTimezone, timezone.DefaultTimezone)
	}
	loc := timezone.Location(cfg.SchedulerTimezone)

	// ======================================================
	// EMAIL
	// ======================================================
	var mailer notify.Mailer
	if cfg.ResendAPIKey != "" {
		mailer = notify.NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom)
	} else {
		log.Println("RESEND_API_KEY not set, emails are logged instead of sent")
		mailer = notify.NewLogMailer(log.Default())
	}
	emails := notify.NewEmailService(mailer, log.Default())

	// ======================================================
	// PREFERENCE CACHE (optional)
	// ======================================================
	var prefsCache reminder.PreferenceCache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := cache.NewClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Printf("redis unavailable, preference cache disabled: %v", err)
		} else {
			defer client.Close()
			prefsCache = cache.NewPreferenceCache(client, cfg.PreferencesCacheTTL)
		}
	}

	// ======================================================
	// AVATAR STORAGE (optional)
	// ======================================================
	var avatars storage.AvatarStore
	if cfg.S3Enabled() {
		avatars = storage.NewS3AvatarStore(cfg)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ======================================================
	// REMINDER SCHEDULER
	// ======================================================
	policy, err := reminder.ParseMarkPolicy(cfg.MarkPolicy)
	if err != nil {
		log.Fatalf("invalid REMINDER_MARK_POLICY: %v", err)
	}

	reminderRepo := infraRepo.NewReminderGormRepository(db)
	sched := scheduler.New(
		reminderRepo,
		reminder.NewPreferenceResolver(reminderRepo, prefsCache),
		emails,
		scheduler.Options{
			Location:      loc,
			Policy:        policy,
			DailyGoalTime: cfg.DailyGoalTime,
			Audit:         auditDispatcher,
		},
	)

	if cfg.SchedulerEnabled {
		if err := sched.Start(); err != nil {
			log.Fatalf("failed to start scheduler: %v", err)
		}
	} else {
		log.Println("reminder scheduler disabled")
	}

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		DB:         db,
		Config:     cfg,
		Audit:      auditDispatcher,
		Location:   loc,
		PrefsCache: prefsCache,
		Mailer:     emails,
		Avatars:    avatars,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// ======================================================
	// GRACEFUL SHUTDOWN
	// ======================================================
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := sched.Stop(ctx); err != nil {
		log.Printf("scheduler stop: %v", err)
	}
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	auditDispatcher.Close()
}
