package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/vbms/inventory-service/internal/customer"
	"github.com/vbms/inventory-service/kafka"
	"github.com/vbms/inventory-service/pkg/database"
	"github.com/vbms/inventory-service/pkg/logger"
	"github.com/vbms/inventory-service/pkg/mailer"
	"github.com/vbms/inventory-service/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "alert-worker")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting alert worker")

	// Initialize tracing
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Tracing disabled, failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			tracing.Shutdown(ctx, tp)
		}()
	}

	// Connect to database for customer lookups
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "vbmsdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	customers := customer.NewRepository(db)
	if err := customers.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// SMTP sender; the worker runs without it and just logs alerts
	var sender mailer.Sender = mailer.NoopSender{}
	if host := getEnv("SMTP_HOST", ""); host != "" {
		port, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))
		sender = mailer.NewSMTPSender(
			host,
			port,
			getEnv("SMTP_USERNAME", ""),
			getEnv("SMTP_PASSWORD", ""),
			getEnv("SMTP_FROM", "alerts@vbms.example.com"),
		)
		logger.Logger.Info().Str("smtp_host", host).Msg("Email delivery enabled")
	} else {
		logger.Logger.Warn().Msg("SMTP_HOST not set, alerts will be logged only")
	}

	// Kafka consumer
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "alert-worker")
	consumer, err := kafka.NewConsumer(brokers, groupID, []string{kafka.TopicStockAlerts})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	worker := &alertWorker{customers: customers, sender: sender}
	consumer.RegisterHandler(kafka.EventTypeStockAlert, worker.handleStockAlert)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start consumer")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down alert worker...")
}

type alertWorker struct {
	customers *customer.Repository
	sender    mailer.Sender
}

// handleStockAlert emails the owning customer about one fired alert.
// A customer that opted out, or is missing, is skipped without error so the
// message is not redelivered.
func (w *alertWorker) handleStockAlert(ctx context.Context, event kafka.StockAlertEvent) error {
	c, err := w.customers.FindByID(event.OwnerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			logger.Warn(ctx).
				Uint("owner_id", event.OwnerID).
				Str("event_id", event.EventID).
				Msg("Alert for unknown customer, skipping")
			return nil
		}
		return err
	}

	if !c.NotifyByEmail {
		logger.Debug(ctx).
			Uint("owner_id", event.OwnerID).
			Str("alert_type", event.AlertType).
			Msg("Customer opted out of email alerts")
		return nil
	}

	subject, body := composeAlertMail(event)
	if err := w.sender.Send(c.Email, subject, body); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("email", c.Email).
			Str("event_id", event.EventID).
			Msg("Dropping alert after send failure")
		return nil
	}

	logger.Info(ctx).
		Str("email", c.Email).
		Str("alert_type", event.AlertType).
		Str("sku", event.SKU).
		Msg("Alert email sent")
	return nil
}

var alertSubjects = map[string]string{
	"low_stock":     "Low stock alert",
	"out_of_stock":  "Out of stock alert",
	"overstock":     "Overstock alert",
	"expiring_soon": "Expiration alert",
}

func composeAlertMail(event kafka.StockAlertEvent) (subject, body string) {
	subject = alertSubjects[event.AlertType]
	if subject == "" {
		subject = "Inventory alert"
	}
	subject = fmt.Sprintf("%s: %s", subject, event.ItemName)

	body = fmt.Sprintf(
		"<p>%s</p><p>Item: <b>%s</b> (SKU %s)<br>Current quantity: %d<br>Reorder point: %d</p>",
		event.Message,
		event.ItemName,
		event.SKU,
		event.CurrentQuantity,
		event.ReorderPoint,
	)
	return subject, body
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
