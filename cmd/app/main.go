package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dispatch/cmd"
	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/s3"
	"dispatch/internal/pkg/routetoken"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	tokens, err := routetoken.NewService(configs.RouteTokenSecret, configs.DriverViewBaseURL)
	if err != nil {
		log.Fatalf("route token service: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	signatureStore, err := s3.NewSignatureStore(
		context.Background(),
		configs.S3SignatureBucket,
		configs.S3Region,
		configs.S3PublicBaseURL,
		logger,
	)
	if err != nil {
		log.Fatalf("signature store: %v", err)
	}

	app := cmd.NewCompositionRoot(gormDB, tokens, signatureStore)
	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		RouteTokenSecret:  goDotEnvVariable("ROUTE_TOKEN_SECRET"),
		DriverViewBaseURL: goDotEnvVariable("DRIVER_VIEW_BASE_URL"),
		S3SignatureBucket: goDotEnvVariable("S3_SIGNATURE_BUCKET"),
		S3Region:          goDotEnvVariable("S3_REGION"),
		S3PublicBaseURL:   goDotEnvVariable("S3_PUBLIC_BASE_URL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("unable to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(
		app.CreateCreateRouteCommandHandler(),
		app.CreateResequenceRouteCommandHandler(),
		app.CreateChangeRouteStatusCommandHandler(),
		app.CreateUpdateRouteCommandHandler(),
		app.CreateDeleteRouteCommandHandler(),
		app.CreateDeliverStopCommandHandler(),
		app.CreateGetRoutesQueryHandler(),
		app.CreateGetRouteQueryHandler(),
		app.CreateGetDriverRouteViewQueryHandler(),
		app.Tokens(),
	)

	validator, err := httpadapter.NewRequestValidator()
	if err != nil {
		log.Fatalf("request validator: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(validator)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
