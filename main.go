// File: shutterbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shutterbook/config"
	"shutterbook/database"
	bookingRepoPkg "shutterbook/database/repository/booking"
	catalogRepoPkg "shutterbook/database/repository/catalog"
	photographerRepoPkg "shutterbook/database/repository/photographer"
	"shutterbook/handlers"
	"shutterbook/middleware"
	"shutterbook/routes"
	"shutterbook/services/availability"
	"shutterbook/services/booking"
	"shutterbook/services/catalog"
	"shutterbook/services/coupon"
	"shutterbook/services/pricing"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize portfolio storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	photographerRepo := photographerRepoPkg.NewMongoPhotographerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// Load the fixed catalogs once; the pure services hold them in memory.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := catalogRepo.EnsureSeedData(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed catalogs: %v", err)
	}
	slots, err := catalogRepo.LoadTimeSlots(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load slot grid: %v", err)
	}
	blackouts, err := catalogRepo.LoadBlackoutDates(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load blackout dates: %v", err)
	}
	addons, err := catalogRepo.LoadAddons(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load addon catalog: %v", err)
	}
	coupons, err := catalogRepo.LoadCoupons(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load coupon ledger: %v", err)
	}

	// services.
	availabilityIndex := availability.NewIndex(slots, blackouts)
	addonCatalog := catalog.NewAddonCatalog(addons)
	couponLedger := coupon.NewLedger(coupons)
	calculator := pricing.NewCalculator(addonCatalog, couponLedger)

	bookingService := &booking.DefaultBookingSessionService{
		Store:         booking.NewRedisDraftStore(utils.GetSessionCacheClient()),
		Availability:  availabilityIndex,
		Addons:        addonCatalog,
		Coupons:       couponLedger,
		Photographers: photographerRepo,
		Bookings:      bookingRepo,
		SessionTTL:    time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Availability:  handlers.NewAvailabilityHandler(availabilityIndex),
		Catalog:       handlers.NewCatalogHandler(addonCatalog, couponLedger),
		Pricing:       handlers.NewPricingHandler(calculator),
		Booking:       handlers.NewBookingHandler(bookingService, bookingRepo, logger),
		Photographers: handlers.NewPhotographerHandler(photographerRepo),
		Storage:       handlers.NewStorageHandler(storageService, photographerRepo),
		Admin:         handlers.NewAdminHandler(bookingRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
