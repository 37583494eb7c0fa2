package main

import (
	"net/http"

	"maktaba-be/internal/activity"
	"maktaba-be/internal/api"
	"maktaba-be/internal/catalog"
	"maktaba-be/internal/cms"
	"maktaba-be/internal/config"
	"maktaba-be/internal/db"
	"maktaba-be/internal/logger"
	"maktaba-be/internal/notify"
	"maktaba-be/internal/order"
	"maktaba-be/internal/points"
	"maktaba-be/internal/review"
	"maktaba-be/internal/shipping"
	"maktaba-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	shippingRepo := shipping.NewRepository(database)
	shippingSvc := shipping.NewService(shippingRepo)

	activityRepo := activity.NewRepository(database)

	var notifier order.Notifier = notify.NopNotifier{}
	if cfg.SMTPHost != "" {
		notifier = notify.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.StoreEmail)
	} else {
		logger.L().Warn("SMTP not configured, order emails disabled")
	}

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, catalogRepo, shippingSvc, userRepo, notifier)

	pointsRepo := points.NewRepository(database)
	pointsSvc := points.NewService(pointsRepo, catalogRepo, activityRepo)

	reviewRepo := review.NewRepository(database)
	reviewSvc := review.NewService(reviewRepo)

	cmsRepo := cms.NewRepository(database)
	cmsSvc := cms.NewService(cmsRepo)

	handler := &api.Handler{
		Users:    userSvc,
		Books:    catalogSvc,
		Shipping: shippingSvc,
		Orders:   orderSvc,
		Points:   pointsSvc,
		Reviews:  reviewSvc,
		CMS:      cmsSvc,
		Activity: activityRepo,
	}

	router := api.NewRouter(handler)

	logger.L().Info("bookstore API listening",
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
