package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexstar1995/vending-machine-application/internal/pkg/database"
	"github.com/alexstar1995/vending-machine-application/internal/pkg/env"
	"github.com/alexstar1995/vending-machine-application/internal/pkg/logging"
	"github.com/alexstar1995/vending-machine-application/internal/vending/bootstrap"
	"github.com/joho/godotenv"
)

const defaultAllowedCoins = "5,10,20,50,100"

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on system env variables")
	}

	cfg := loadConfig()

	allowedCoins := defaultAllowedCoins
	env.TrySetFromEnv(env.EnvAllowedCoins, &allowedCoins)

	coins, err := bootstrap.ParseAllowedCoins(allowedCoins)
	if err != nil {
		logger.Error("invalid allowed coins configuration", "error", err.Error())
		os.Exit(1)
	}
	cfg.AllowedCoins = coins

	app := bootstrap.NewVendingApp(cfg, logger)
	if err := app.Run(mainCtx); err != nil {
		logger.Error("application failed", "error", err.Error())
		os.Exit(1)
	}

	app.Shutdown()
}

func loadConfig() bootstrap.Config {
	cfg := bootstrap.Config{
		HttpPort: ":8080",
		DbSettings: database.PostgresSettings{
			User:     "admin",
			Password: "password",
			Host:     "localhost",
			Port:     "5432",
			DBName:   "vending_db",
		},
		JwtSecret: "test-secret",
	}

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)

	return cfg
}
