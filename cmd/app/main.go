package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"fooddelivery/cmd"
	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres/fooditemrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/outboxrepo"
	"fooddelivery/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultTokenTTL = 24 * time.Hour

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	db := mustConnectDB(configs, logger)
	mustMigrate(db, logger)

	root := cmd.NewCompositionRoot(configs, db, logger)

	dispatcher := root.CreateEventDispatcher()
	jobManager := root.CreateJobManager(dispatcher)
	if err := jobManager.StartAll(); err != nil {
		logger.Error("Failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&root, configs, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("No .env file found, relying on environment", "error", err)
	}

	tokenTTL := defaultTokenTTL
	if raw := os.Getenv("JWT_TOKEN_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logger.Error("Invalid JWT_TOKEN_TTL", "value", raw, "error", err)
			os.Exit(1)
		}
		tokenTTL = parsed
	}

	return cmd.Config{
		HTTPPort:    os.Getenv("HTTP_PORT"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		DBSslMode:   os.Getenv("DB_SSLMODE"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTokenTTL: tokenTTL,
	}
}

func mustConnectDB(configs cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories depend on.
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	return db
}

func mustMigrate(db *gorm.DB, logger *slog.Logger) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&fooditemrepo.FoodItemDTO{},
		&userrepo.UserDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadapter.NewRequestValidator()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	jwtKey := []byte(configs.JWTSecret)
	userRepository := root.CreateUserRepository()

	server := httpadapter.NewServer(
		root.CreateRegisterUserCommandHandler(),
		root.CreateReviewAccountCommandHandler(),
		root.CreatePlaceOrderCommandHandler(),
		root.CreateAcceptOrderCommandHandler(),
		root.CreateSendOrderCommandHandler(),
		root.CreateDeliverOrderCommandHandler(),
		root.CreateCreateFoodItemCommandHandler(),
		root.CreateDeleteFoodItemCommandHandler(),
		root.CreateGetMenuQueryHandler(),
		root.CreateGetActiveOrdersQueryHandler(),
		userRepository,
		jwtKey,
		configs.JWTTokenTTL,
		logger,
	)

	authMiddleware := httpadapter.NewAuthMiddleware(userRepository, jwtKey, logger)
	server.RegisterRoutes(e, authMiddleware)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
