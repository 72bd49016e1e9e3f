package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"vahanbazar/internal/config"
	"vahanbazar/internal/handlers"
	"vahanbazar/internal/middleware"
	mongorepo "vahanbazar/internal/repositories/mongodb"
	"vahanbazar/internal/services"
	"vahanbazar/pkg/cache"
	"vahanbazar/pkg/database"
	"vahanbazar/pkg/logger"
	"vahanbazar/pkg/storage"
	"vahanbazar/routes"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
		Caller: cfg.App.Debug,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}

	mongoDB, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer mongoDB.Close()

	if err := database.NewMigrator(mongoDB.Database).Up(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.Warnf("redis unavailable, caching disabled: %v", err)
		redisCache = nil
	}

	storageProvider, err := newStorageProvider(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to init storage provider: %v", err)
	}

	// Repositories.
	brandRepo := mongorepo.NewBrandRepository(mongoDB.Database)
	variantRepo := mongorepo.NewVariantRepository(mongoDB.Database)
	listingRepo := mongorepo.NewListingRepository(mongoDB.Database, redisCache)
	imageRepo := mongorepo.NewImageRepository(mongoDB.Database)
	dealershipRepo := mongorepo.NewDealershipRepository(mongoDB.Database)
	userRepo := mongorepo.NewUserRepository(mongoDB.Database)
	wishlistRepo := mongorepo.NewWishlistRepository(mongoDB.Database)
	bookingRepo := mongorepo.NewBookingRepository(mongoDB.Database)
	reviewRepo := mongorepo.NewReviewRepository(mongoDB.Database)
	notificationRepo := mongorepo.NewNotificationRepository(mongoDB.Database)

	// Services.
	brandService := services.NewBrandService(brandRepo, log)
	variantService := services.NewVariantService(variantRepo, log)
	imageService := services.NewImageService(imageRepo, storageProvider, log)
	listingService := services.NewListingService(
		listingRepo, userRepo, dealershipRepo,
		brandService, variantService, imageService,
		mongoDB, redisCache, log,
	)
	wishlistService := services.NewWishlistService(wishlistRepo, listingRepo, log)
	bookingService := services.NewBookingService(bookingRepo, listingRepo, dealershipRepo, userRepo, notificationRepo, log)
	reviewService := services.NewReviewService(reviewRepo, listingRepo, userRepo, log)
	notificationService := services.NewNotificationService(notificationRepo, log)
	dealerService := services.NewDealerService(dealershipRepo, listingRepo, bookingRepo, userRepo, redisCache, log)

	// Handlers.
	brandHandler := handlers.NewBrandHandler(brandService, log)
	variantHandler := handlers.NewVariantHandler(variantService, log)
	listingHandler := handlers.NewListingHandler(listingService, log)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService, log)
	bookingHandler := handlers.NewBookingHandler(bookingService, log)
	reviewHandler := handlers.NewReviewHandler(reviewService, log)
	notificationHandler := handlers.NewNotificationHandler(notificationService, log)
	dealerHandler := handlers.NewDealerHandler(dealerService, log)
	uploadHandler := handlers.NewUploadHandler(storageProvider, log)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		if err := mongoDB.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "version": cfg.App.Version})
	})

	auth := middleware.AuthRequired(cfg.Security.JWTSecret)

	v1 := router.Group("/api/v1")
	routes.SetupListingRoutes(v1, listingHandler, variantHandler, reviewHandler, auth)
	routes.SetupBrandRoutes(v1, brandHandler, auth)
	routes.SetupUserRoutes(v1, wishlistHandler, bookingHandler, notificationHandler, auth)
	routes.SetupDealerRoutes(v1, dealerHandler, listingHandler, bookingHandler, auth)
	routes.SetupUploadRoutes(v1, uploadHandler, auth)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
}

func newStorageProvider(cfg *config.StorageConfig) (storage.Provider, error) {
	switch cfg.Provider {
	case "aws":
		return storage.NewAWSS3Storage(cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.CDNDomain)
	case "gcp":
		return storage.NewGCPStorage(cfg.GCP.Bucket, cfg.GCP.CredentialsFile, cfg.GCP.CDNDomain)
	default:
		return storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	}
}
