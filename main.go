package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mathaes-33/Hanover-Helpers/internal/ai"
	"github.com/mathaes-33/Hanover-Helpers/internal/handlers"
	"github.com/mathaes-33/Hanover-Helpers/internal/middleware"
	"github.com/mathaes-33/Hanover-Helpers/internal/models"
	"github.com/mathaes-33/Hanover-Helpers/internal/repositories"
	"github.com/mathaes-33/Hanover-Helpers/internal/services"
	"github.com/mathaes-33/Hanover-Helpers/pkg/blobstore"
	"github.com/mathaes-33/Hanover-Helpers/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORAGE_BACKEND", "file") // file | sqlite | postgres
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("STORE_LOAD_DELAY_MS", 0)
	viper.SetDefault("STORE_SAVE_DELAY_MS", 0)
	viper.SetDefault("SQLITE_PATH", "hanover.db")
	viper.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=hanover port=5432 sslmode=disable")
	viper.SetDefault("JWT_SECRET", "change_me_in_production")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables events
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Storage ---
	userRepo, jobRepo, err := newRepositories()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		events = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, board events are disabled.")
	}

	// --- Services ---
	authService := services.NewAuthService(userRepo, viper.GetString("JWT_SECRET"))
	boardService := services.NewBoardService(userRepo, jobRepo, events)
	jobParser := ai.NewGeminiParser(viper.GetString("GEMINI_API_KEY"), viper.GetString("GEMINI_MODEL"))

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(boardService)
	helperHandler := handlers.NewHelperHandler(boardService)
	reviewHandler := handlers.NewReviewHandler(boardService)
	parseHandler := handlers.NewParseHandler(jobParser)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())

	apiV1 := app.Group("/api/v1")
	protected := apiV1.Group("", middleware.AuthRequired(authService))

	authHandler.RegisterRoutes(apiV1)
	jobHandler.RegisterRoutes(apiV1, protected)
	helperHandler.RegisterRoutes(apiV1)
	reviewHandler.RegisterRoutes(protected)
	parseHandler.RegisterRoutes(apiV1)

	// Static example handler, the simplest possible endpoint.
	apiV1.Get("/hello", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Hello from Hanover Helpers!",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- RabbitMQ Consumer ---
	if mqClient != nil {
		log.Println("Starting RabbitMQ consumer for board events...")
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received board event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeJobEvents(messageHandler); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// newRepositories builds the storage layer for the configured backend. The
// file backend is the default and needs no external services.
func newRepositories() (repositories.UserRepository, repositories.JobRepository, error) {
	switch backend := viper.GetString("STORAGE_BACKEND"); backend {
	case "file":
		store, err := blobstore.New(
			viper.GetString("DATA_DIR"),
			blobstore.WithLatency(
				time.Duration(viper.GetInt("STORE_LOAD_DELAY_MS"))*time.Millisecond,
				time.Duration(viper.GetInt("STORE_SAVE_DELAY_MS"))*time.Millisecond,
			),
		)
		if err != nil {
			return nil, nil, err
		}
		userRepo, err := repositories.NewFileUserRepository(store)
		if err != nil {
			return nil, nil, err
		}
		jobRepo, err := repositories.NewFileJobRepository(store)
		if err != nil {
			return nil, nil, err
		}
		return userRepo, jobRepo, nil

	case "sqlite":
		db, err := gorm.Open(sqlite.Open(viper.GetString("SQLITE_PATH")), &gorm.Config{})
		if err != nil {
			return nil, nil, err
		}
		return newGORMRepositories(db)

	case "postgres":
		db, err := gorm.Open(postgres.Open(viper.GetString("DATABASE_DSN")), &gorm.Config{})
		if err != nil {
			return nil, nil, err
		}
		return newGORMRepositories(db)

	default:
		log.Fatalf("Unknown STORAGE_BACKEND %q (want file, sqlite or postgres)", backend)
		return nil, nil, nil
	}
}

// newGORMRepositories migrates the schema, seeds an empty database and wires
// the GORM repositories.
func newGORMRepositories(db *gorm.DB) (repositories.UserRepository, repositories.JobRepository, error) {
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Review{}); err != nil {
		return nil, nil, err
	}

	userRepo := repositories.NewGORMUserRepository(db)
	jobRepo := repositories.NewGORMJobRepository(db)
	seedBoard(db, userRepo, jobRepo)
	return userRepo, jobRepo, nil
}

// seedBoard populates an empty database with the starter community.
func seedBoard(db *gorm.DB, userRepo repositories.UserRepository, jobRepo repositories.JobRepository) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Error checking for existing users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	users := repositories.SeedUsers()
	for i := range users {
		if err := userRepo.Create(&users[i]); err != nil {
			log.Printf("Error seeding user %s: %v", users[i].Name, err)
		} else {
			log.Printf("Seeded user: %s (ID: %s)", users[i].Name, users[i].ID)
		}
	}

	jobs := repositories.SeedJobs()
	for i := range jobs {
		if err := jobRepo.Create(&jobs[i]); err != nil {
			log.Printf("Error seeding job %s: %v", jobs[i].Title, err)
		} else {
			log.Printf("Seeded job: %s (ID: %s)", jobs[i].Title, jobs[i].ID)
		}
	}
}
