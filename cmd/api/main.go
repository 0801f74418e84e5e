package main

import (
	"context"
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/pkg/logger"
	"app/prometheus"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.InitLogger(cfg.GoEnv, cfg.LogLevel)
	log := logger.GetLogger()
	defer log.Sync()

	prometheus.InitMetrics("ethoparts")

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("db migrate failed", zap.Error(err))
	}
	if err := db.Seed(gormDB); err != nil {
		log.Fatal("db seed failed", zap.Error(err))
	}

	txManager := infraRepo.NewTxManagerGorm(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	trackingRepo := infraRepo.NewTrackingGormRepository(gormDB)
	paymentRepo := infraRepo.NewPaymentGormRepository(gormDB)
	methodRepo := infraRepo.NewPaymentMethodGormRepository(gormDB)
	sellerMethodRepo := infraRepo.NewSellerPaymentMethodGormRepository(gormDB)
	commissionRepo := infraRepo.NewCommissionGormRepository(gormDB)
	commissionPayRepo := infraRepo.NewCommissionPaymentGormRepository(gormDB)
	settingRepo := infraRepo.NewSettingGormRepository(gormDB)

	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	catalogUC := usecase.NewCatalogUsecase(txManager, productRepo, categoryRepo, reviewRepo, userRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderItemRepo, trackingRepo)
	paymentUC := usecase.NewPaymentUsecase(txManager, paymentRepo, orderRepo, orderItemRepo)
	commissionUC := usecase.NewCommissionUsecase(txManager, commissionRepo, commissionPayRepo, userRepo)
	methodUC := usecase.NewPaymentMethodUsecase(methodRepo, sellerMethodRepo, settingRepo, userRepo)
	statsUC := usecase.NewStatsUsecase(userRepo, productRepo, orderRepo, paymentRepo, commissionRepo, commissionPayRepo)

	e := server.New(cfg, server.Handlers{
		Auth:          handler.NewAuthHandler(authUC),
		Catalog:       handler.NewCatalogHandler(catalogUC),
		Order:         handler.NewOrderHandler(orderUC),
		Payment:       handler.NewPaymentHandler(paymentUC),
		Commission:    handler.NewCommissionHandler(commissionUC),
		PaymentMethod: handler.NewPaymentMethodHandler(methodUC),
		Stats:         handler.NewStatsHandler(statsUC),
	})

	go runOverdueSweep(cfg, commissionUC, log)

	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// runOverdueSweep periodically flips pending commissions past their due
// date to overdue.
func runOverdueSweep(cfg config.Config, uc *usecase.CommissionUsecase, log *zap.Logger) {
	interval, err := time.ParseDuration(cfg.SweepInterval)
	if err != nil || interval <= 0 {
		interval = 10 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		n, err := uc.SweepOverdue(context.Background(), time.Now())
		if err != nil {
			log.Error("overdue sweep failed", zap.Error(err))
			continue
		}
		if n > 0 {
			prometheus.CommissionsOverdueCounter.Add(float64(n))
			log.Info("overdue sweep completed", zap.Int64("marked", n))
		}
	}
}
