package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio-backend/api"
	"portfolio-backend/config"
	"portfolio-backend/database"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		zlog.Warn().Err(err).Msg("no .env file loaded")
	}

	c := config.New()

	db, err := openDatabase(c)
	if err != nil {
		zlog.Fatal().Err(err).Msg("error initializing database")
	}

	adminPassword := config.GetString(c, "ADMIN_PASSWORD", "admin123")
	if err := database.Bootstrap(db, adminPassword); err != nil {
		zlog.Fatal().Err(err).Msg("error bootstrapping data")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(db)
	if err != nil {
		zlog.Fatal().Err(err).Msg("error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	zlog.Error().Err(fatalErr).Msg("closing server")

	server.ShutdownGracefully(30 * time.Second)
}

// openDatabase selects the persistence backend from DB_TYPE: postgres or
// sqlite for production, memory for local development.
func openDatabase(c map[string]string) (database.Database, error) {
	dbType := config.GetString(c, "DB_TYPE", "sqlite")

	if dbType == "memory" {
		return database.NewMemory(), nil
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var dialector gorm.Dialector
	switch dbType {
	case "postgres":
		dsn := config.GetString(c, "DATABASE_URL", "")
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
				config.GetString(c, "DB_HOST", "localhost"),
				config.GetString(c, "DB_USER", "postgres"),
				config.GetString(c, "DB_PASSWORD", ""),
				config.GetString(c, "DB_NAME", "portfolio"),
				config.GetString(c, "DB_PORT", "5432"),
				config.GetString(c, "DB_SSLMODE", "disable"),
			)
		}
		dialector = postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		})
	case "sqlite":
		dialector = sqlite.Open(config.GetString(c, "SQLITE_PATH", "portfolio.db"))
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return database.NewGorm(db), nil
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to
// the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
