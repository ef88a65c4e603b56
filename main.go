package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alerta-golpe/api-go/config"
	"github.com/alerta-golpe/api-go/controllers"
	"github.com/alerta-golpe/api-go/middleware"
	"github.com/alerta-golpe/api-go/repositories"
	"github.com/alerta-golpe/api-go/routes"
	"github.com/alerta-golpe/api-go/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := config.InitTracing(ctx, cfg)
	if err != nil {
		log.Warnf("warn: failed to start tracer: %+v", err)
	}
	if tp != nil {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Errorf("Error shutting down tracer provider: %v", err)
			}
		}()
	}

	// Initialize database
	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatalf("failed to initialize database: %+v", err)
	}

	users := repositories.NewPostgresUserRepository(db)
	scams := repositories.NewPostgresScamRepository(db)
	comments := repositories.NewPostgresCommentRepository(db)
	likes := repositories.NewPostgresLikeRepository(db)
	saved := repositories.NewPostgresSavedScamRepository(db)
	reports := repositories.NewPostgresReportRepository(db)
	categories := repositories.NewPostgresCategoryRepository(db)

	var domainCache repositories.DomainCache
	if rdb := config.NewRedisClient(ctx, cfg.RedisAddr, log); rdb != nil {
		defer rdb.Close()
		domainCache = repositories.NewRedisDomainCache(rdb)
	}

	var storage repositories.ObjectStorage
	if client := config.NewR2Client(cfg.R2); client != nil {
		storage = repositories.NewR2Storage(client, cfg.R2.BucketName, cfg.R2.PublicURL)
	} else {
		log.Warn("R2 credentials not set, evidence uploads disabled")
	}

	var google services.GoogleIdentityProvider
	if g := config.NewGoogleConfig(cfg.Google); g != nil {
		google = g
	} else {
		log.Warn("Google OAuth credentials not set, Google sign-in disabled")
	}

	categoryService := services.NewCategoryService(categories)
	if err := categoryService.EnsureDefaults(ctx); err != nil {
		log.Fatalf("failed to seed categories: %+v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access sql.DB: %v", err)
	}

	deps := routes.Dependencies{
		Auth:       services.NewAuthService(users, google, cfg.JWTSecret, cfg.JWTExpiry, bcrypt.DefaultCost),
		Users:      services.NewUserService(users, scams, comments, likes, bcrypt.DefaultCost),
		Comments:   services.NewCommentService(comments),
		Scams:      services.NewScamService(scams, likes, saved, reports, domainCache, log),
		Categories: categoryService,
		Domains:    services.NewDomainService(scams, domainCache, log),
		Uploads:    services.NewUploadService(storage),
		Admin:      services.NewAdminService(users, scams, comments, reports),
		HealthChecks: map[string]controllers.HealthCheck{
			"database": sqlDB.PingContext,
		},
		Log: log,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create a new Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.FrontendURL))

	// Initialize routes
	routes.SetupRoutes(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server forced to shutdown: %v", err)
	}
}
