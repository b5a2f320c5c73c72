package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"parcel/cmd"
	httpadapter "parcel/internal/adapters/in/http"
	"parcel/internal/adapters/out/geoconfig"
	"parcel/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)
	directory, err := geoconfig.LoadDirectory(configs.GeographyConfigPath)
	if err != nil {
		log.Fatalf("Error loading geography catalog: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, directory)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		GeographyConfigPath: goDotEnvVariable("GEOGRAPHY_CONFIG_PATH"),
		DraftReminderAge:    getDraftReminderAge(),
	}
	return config
}

func getDraftReminderAge() time.Duration {
	raw := goDotEnvVariable("DRAFT_REMINDER_AGE")
	age, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Error parsing DRAFT_REMINDER_AGE %q: %v", raw, err)
	}
	return age
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(&orderrepo.ParcelDTO{}, &orderrepo.TrackingEventDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateStageParcelCommandHandler(),
		app.CreateGetRegionsQueryHandler(),
		app.CreateGetServiceCentersQueryHandler(),
		app.TariffCalculator(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
