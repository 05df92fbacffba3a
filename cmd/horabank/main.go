package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/dmatosb/horabank/internal/api"
	"github.com/dmatosb/horabank/internal/cli"
	"github.com/dmatosb/horabank/internal/db"
	"github.com/dmatosb/horabank/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const minimumSecretKeyLength = 32

func main() {
	dbPath := getEnv("DB_PATH", filepath.Join("data", "horabank.db"))

	if len(os.Args) > 1 && os.Args[1] == "reset" {
		if err := cli.RunResetPasswordCommand(dbPath); err != nil {
			log.Fatalf("reset failed: %v", err)
		}
		return
	}

	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	port, err := resolvePort()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	seeder := services.NewSeedService(db.NewAdminRepository(database))
	created, err := seeder.EnsureProtectedAdmin(
		getEnv("DEFAULT_ADMIN_USERNAME", "GDSSOUZ5"),
		getEnv("DEFAULT_ADMIN_PASSWORD", "902512"),
		getEnv("DEFAULT_ADMIN_FULL_NAME", "Default Administrator"),
		getEnv("DEFAULT_ADMIN_BADGE", "000000"),
	)
	if err != nil {
		log.Fatalf("seed default administrator failed: %v", err)
	}
	if created {
		log.Println("seeded default administrator; change its password before going live")
	}

	handler, err := api.NewHandler(database, secretKey, cookieSecure)
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "HoraBank",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("HoraBank listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func resolveSecretKey() (string, error) {
	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if secretKey == "change_me_in_production" || secretKey == "replace_with_at_least_32_random_characters" {
		return "", errors.New("SECRET_KEY still uses a placeholder value")
	}
	if len(secretKey) < minimumSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minimumSecretKeyLength)
	}
	return secretKey, nil
}

func resolvePort() (string, error) {
	port := getEnv("PORT", "8080")
	number, err := strconv.Atoi(port)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q", port)
	}
	if number < 1 || number > 65535 {
		return "", fmt.Errorf("PORT %d out of range", number)
	}
	return port, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
