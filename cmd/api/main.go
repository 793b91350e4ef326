package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/portfolio-importer/internal/config"
	"alfredoptarigan/portfolio-importer/internal/handlers"
	"alfredoptarigan/portfolio-importer/internal/repositories"
	"alfredoptarigan/portfolio-importer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	portfolioRepo := repositories.NewPortfolioRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized (model %s)\n", cfg.Gemini.Model)

	var validator services.SchemaValidator
	if cfg.Extraction.StrictSchema {
		validator, err = services.NewSchemaValidator(services.PortfolioSchema())
		if err != nil {
			log.Fatalf("❌ Failed to compile portfolio schema: %v", err)
		}
		log.Println("✅ Strict schema validation enabled")
	}

	extractorService := services.NewExtractorService(geminiService, validator)
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	pdfParser := services.NewPDFParserService()
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	importHandler := handlers.NewImportHandler(
		extractorService,
		uploadService,
		pdfParser,
		portfolioRepo,
		cfg.Extraction.Timeout,
	)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Portfolio Importer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		// base64 JSON bodies are ~4/3 the file size
		BodyLimit:    int(cfg.Storage.MaxFileSize) * 2,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/import/document", importHandler.HandleImportDocument)
	api.Post("/import/text", importHandler.HandleImportText)
	api.Post("/import/pdf-text", importHandler.HandleImportPDFText)
	api.Get("/portfolios", portfolioHandler.HandleListPortfolios)
	api.Get("/portfolios/:id", portfolioHandler.HandleGetPortfolio)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Portfolio Importer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/import/document",
				"POST /api/v1/import/text",
				"POST /api/v1/import/pdf-text",
				"GET /api/v1/portfolios",
				"GET /api/v1/portfolios/:id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
