package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stpnv0/StayBooker/internal/auth"
	"github.com/stpnv0/StayBooker/internal/config"
	"github.com/stpnv0/StayBooker/internal/handler"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/stpnv0/StayBooker/internal/notification"
	"github.com/stpnv0/StayBooker/internal/repository"
	"github.com/stpnv0/StayBooker/internal/router"
	"github.com/stpnv0/StayBooker/internal/scheduler"
	"github.com/stpnv0/StayBooker/internal/service"
	"github.com/stpnv0/StayBooker/internal/session"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	_ "time/tzdata"
)

const migrationsDir = "migrations"

var errTrustHeaderOutsideTest = errors.New("auth.trust_header is only allowed in gin test mode")

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	sessions   *session.Store
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	if cfg.Auth.TrustHeader && !cfg.TrustHeaderEnabled() {
		return nil, errTrustHeaderOutsideTest
	}

	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"StayBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initSessions(); err != nil {
		return nil, fmt.Errorf("init sessions: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// initSessions connects the revocation store. Without a redis address
// logout still answers but revoked tokens stay valid until they expire.
func (a *App) initSessions() error {
	a.redis = session.NewClient(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	a.sessions = session.New(a.redis)

	if !a.sessions.Enabled() {
		a.log.Warn("redis address is empty, token revocation disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.sessions.Ping(ctx); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)
	return nil
}

func (a *App) initServices() error {
	loc, err := a.cfg.Booking.Location()
	if err != nil {
		return err
	}

	userRepo := repository.NewUserRepo(a.db)
	categoryRepo := repository.NewCategoryRepo(a.db)
	amenityRepo := repository.NewAmenityRepo(a.db)
	perkRepo := repository.NewPerkRepo(a.db)
	roomRepo := repository.NewRoomRepo(a.db)
	experienceRepo := repository.NewExperienceRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	reviewRepo := repository.NewReviewRepo(a.db)
	wishlistRepo := repository.NewWishlistRepo(a.db)
	photoRepo := repository.NewPhotoRepo(a.db)
	chatRepo := repository.NewChatRepo(a.db)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	tokens := auth.NewTokenManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.AccessTTL, a.cfg.Auth.RefreshTTL)
	availability := service.NewAvailability(bookingRepo, loc)

	userService := service.NewUserService(userRepo, auth.Hasher{}, tokens, a.sessions)
	bookingService := service.NewBookingService(
		bookingRepo, roomRepo, experienceRepo, userRepo, availability, n, a.log,
	)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(handler.Services{
		Users:       userService,
		Categories:  service.NewCategoryService(categoryRepo),
		Amenities:   service.NewAmenityService(amenityRepo),
		Perks:       service.NewPerkService(perkRepo),
		Rooms:       service.NewRoomService(roomRepo, categoryRepo, wishlistRepo, photoRepo, a.log),
		Experiences: service.NewExperienceService(experienceRepo, categoryRepo, a.log),
		Bookings:    bookingService,
		Reviews:     service.NewReviewService(reviewRepo, roomRepo, experienceRepo, userRepo, a.cfg.Booking.PageSize),
		Wishlists:   service.NewWishlistService(wishlistRepo, roomRepo, experienceRepo, a.log),
		Photos:      service.NewPhotoService(photoRepo, roomRepo, experienceRepo),
		Chats:       service.NewChatService(chatRepo, userRepo),
	})

	var authOpts []middleware.AuthOption
	if a.cfg.TrustHeaderEnabled() {
		a.log.Warn("Trust-Me header authentication enabled")
		authOpts = append(authOpts, middleware.WithTrustHeader(userService))
	}

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Authenticate(tokens, a.sessions, a.log, authOpts...),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Metrics(),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.sessions.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
