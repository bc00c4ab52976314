package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/furnishfusion/storefront/config"
	"github.com/furnishfusion/storefront/internal/delivery/httpapi"
	"github.com/furnishfusion/storefront/internal/infrastructure/notify"
	"github.com/furnishfusion/storefront/internal/infrastructure/storage"
	"github.com/furnishfusion/storefront/internal/planner"
	"github.com/furnishfusion/storefront/internal/usecase"
	"github.com/furnishfusion/storefront/pkg/logger"
)

func main() {
	logger.Init()
	logger.InfoLogger.Println("Starting storefront...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = storage.BuildDSNFromEnv()
	}
	db, err := storage.Open(dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := storage.InitSchema(ctx, db); err != nil {
		log.Fatalf("init schema: %v", err)
	}
	logger.InfoLogger.Println("Database ready")

	productRepo := storage.NewPostgresProductRepository(db)
	userRepo := storage.NewPostgresUserRepository(db)
	adminRepo := storage.NewPostgresAdminRepository(db)
	orderRepo := storage.NewPostgresOrderRepository(db)
	couponRepo := storage.NewPostgresCouponRepository(db)
	reviewRepo := storage.NewPostgresReviewRepository(db)
	wishlistRepo := storage.NewPostgresWishlistRepository(db)
	contactRepo := storage.NewPostgresContactRepository(db)

	sessions := storage.NewSessionStore()
	sessions.StartJanitor(ctx)

	var notifier notify.Notifier = notify.Noop{}
	if cfg.TelegramToken != "" && cfg.AdminChatID != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.AdminChatID, cfg.AdminThreadID)
		if err != nil {
			logger.ErrorLogger.Printf("telegram notifications disabled: %v", err)
		} else {
			notifier = tg
			logger.InfoLogger.Println("Telegram order notifications enabled")
		}
	}

	budgetPlanner := planner.New(productRepo)
	authUC := usecase.NewAuthUseCase(userRepo, adminRepo, orderRepo, contactRepo, sessions)
	catalogUC := usecase.NewCatalogUseCase(productRepo, wishlistRepo)
	cartUC := usecase.NewCartUseCase(productRepo, sessions)
	orderUC := usecase.NewOrderUseCase(orderRepo, couponRepo, reviewRepo, contactRepo, cartUC, notifier)
	adminUC := usecase.NewAdminUseCase(productRepo, orderRepo, userRepo, couponRepo, contactRepo, notifier)

	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:    httpapi.NewAuthHandler(authUC),
		Catalog: httpapi.NewCatalogHandler(catalogUC),
		Cart:    httpapi.NewCartHandler(cartUC),
		Order:   httpapi.NewOrderHandler(orderUC, cfg.UploadDir),
		Planner: httpapi.NewPlannerHandler(budgetPlanner),
		Admin:   httpapi.NewAdminHandler(adminUC, cfg.UploadDir),
	}, sessions, httpapi.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		UploadDir:      cfg.UploadDir,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logger.InfoLogger.Printf("Listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorLogger.Printf("server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.InfoLogger.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorLogger.Printf("forced shutdown: %v", err)
	}
	logger.InfoLogger.Println("Server stopped")
}
