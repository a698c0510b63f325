package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"ironweb/cmd"
	httpin "ironweb/internal/adapters/in/http"
	"ironweb/internal/adapters/out/postgres/itemrepo"
	"ironweb/internal/adapters/out/postgres/orderrepo"
	"ironweb/internal/adapters/out/postgres/sequencerepo"
	"ironweb/internal/core/domain/model/item"
	"ironweb/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	mustMigrate(gormDB)
	mustSeedCatalog(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemLineDTO{},
		&orderrepo.StepDTO{},
		&sequencerepo.SequenceDTO{},
		&sequencerepo.SequenceEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

// mustSeedCatalog refreshes the bookable garment catalog. Fixed IDs keep the
// seed idempotent across restarts; prices are in whole currency units.
func mustSeedCatalog(gormDB *gorm.DB) {
	seed := []struct {
		id    string
		name  string
		price int64
	}{
		{"0d9c5965-43dc-4fca-9e39-6328d0a7b611", "shirt", 12},
		{"3f9a8a3e-52a1-4c52-9eb6-9a6b39f0a412", "trousers", 20},
		{"6a1d6c0f-74f4-41a5-8f4a-2f0db6f0c513", "dress", 35},
		{"8c3b2e71-9d0a-4ed9-b1a3-5cf7f9d0e614", "suit", 60},
		{"b54e0f82-1bc3-4f60-8d25-71d8a3b1f715", "coat", 45},
		{"de6f1a93-2ed4-4071-9c36-83e9b4c20816", "bed linen set", 28},
	}

	repo := itemrepo.NewGormItemRepository(gormDB)
	for _, s := range seed {
		id, err := kernel.UUIDFromString(s.id)
		if err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		price, err := kernel.NewMoneyFromInt(s.price)
		if err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		entity, err := item.NewItem(id, s.name, price)
		if err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
		if err = repo.Upsert(context.Background(), entity); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Server.ReadTimeout = 30 * time.Second
	e.Server.WriteTimeout = 30 * time.Second

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAdvanceOrderStepCommandHandler(),
		app.CreateAssignAgentCommandHandler(),
		app.CreateSwapAgentOrdersCommandHandler(),
		app.CreateLockAgentSequenceCommandHandler(),
		app.CreateUnlockAgentSequenceCommandHandler(),
		app.CreateListBookableItemsQueryHandler(),
		app.CreateGetAvailableSlotsQueryHandler(),
		app.CreateGetPriceQuoteQueryHandler(),
		app.CreateGetAgentOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
