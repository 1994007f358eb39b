package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"milesahead/config"
	_ "milesahead/docs"
	"milesahead/internal/adapters/auth"
	"milesahead/internal/adapters/email"
	"milesahead/internal/adapters/payment"
	httpdelivery "milesahead/internal/delivery/http"
	"milesahead/internal/delivery/http/controllers"
	"milesahead/internal/delivery/http/middleware"
	"milesahead/internal/domain"
	"milesahead/internal/repository/postgres"
	"milesahead/internal/services"
)

// @title MilesAhead API
// @version 1.0
// @description Marathon listing and registration backend: marathon CRUD, applicant registrations, newsletter subscriptions, and payment intents.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	marathonRepo := postgres.NewMarathonRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	subscriberRepo := postgres.NewSubscriberRepository(db)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	var gateway domain.PaymentGateway
	if cfg.StripeSecretKey != "" {
		gateway, err = payment.NewStripeGateway(cfg.StripeSecretKey)
		if err != nil {
			logger.Error("failed to create payment gateway", "err", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("no stripe key configured, using mock payment gateway")
		gateway = payment.NewMockGateway()
	}

	tokenCodec := auth.NewJWTCodec(cfg.JWTSecret)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	marathonService := services.NewMarathonService(marathonRepo)
	registrationService := services.NewRegistrationService(marathonRepo, registrationRepo, logger, cfg.DecrementOnWithdraw)
	subscriberService := services.NewSubscriberService(subscriberRepo, emailService, logger)
	paymentService := services.NewPaymentService(gateway)

	production := cfg.Environment == "production"
	mux := httpdelivery.NewRouter(
		tokenCodec,
		controllers.NewAuthController(logger, tokenCodec, production),
		controllers.NewMarathonController(logger, marathonService),
		controllers.NewRegistrationController(logger, registrationService),
		controllers.NewSubscriberController(logger, subscriberService),
		controllers.NewPaymentController(logger, paymentService),
	)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "env", cfg.Environment, "payment_gateway", gateway.Name())
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
