package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog/log"

	"github.com/readyreserve/chatbot-be/internal/config"
	"github.com/readyreserve/chatbot-be/internal/core/knowledge"
	"github.com/readyreserve/chatbot-be/internal/core/llm"
	"github.com/readyreserve/chatbot-be/internal/handlers"
	"github.com/readyreserve/chatbot-be/internal/services"
	"github.com/readyreserve/chatbot-be/internal/shared/utils"

	_ "github.com/readyreserve/chatbot-be/docs"
)

// @title ReadyReserve AI Chatbot API
// @version 1.0
// @description Ready Assistant that knows everything about the ReadyReserve AI website
// @contact.name API Support
// @contact.email support@readyreserve.ai
// @license.name MIT
// @host localhost:8001
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()

	// Init logger
	utils.InitLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("🚀 Starting chatbot-api")

	// Init completion provider from environment. A missing credential is a
	// startup failure, never a per-request one.
	providerCfg, err := llm.LoadProviderFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to load LLM config")
	}
	provider, err := llm.NewProvider(providerCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to create LLM provider")
	}
	log.Info().
		Str("provider", provider.GetProviderName()).
		Str("model", providerCfg.Model).
		Msg("🤖 Completion provider ready")

	// Build the website knowledge base once; it is read-only for the
	// process lifetime and shared across requests without locking.
	kb := knowledge.Default()

	// Init services and handlers
	chatService := services.NewChatService(kb, provider)
	chatHandler := handlers.NewChatHandler(chatService)
	kbHandler := handlers.NewKBHandler(kb)
	healthHandler := handlers.NewHealthHandler(provider)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowCredentials: true,
	}))

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.GetHealth)
	app.Post("/chat", chatHandler.Chat)
	app.Post("/search-faq", kbHandler.SearchFAQ)
	app.Get("/faq-categories", kbHandler.GetFAQCategories)
	app.Get("/faq/:category", kbHandler.GetFAQByCategory)
	app.Get("/services", kbHandler.GetServices)
	app.Get("/services/:name", kbHandler.GetServiceByName)
	app.Get("/pricing", kbHandler.GetPricing)
	app.Get("/contact", kbHandler.GetContact)
	app.Get("/how-it-works", kbHandler.GetHowItWorks)

	log.Info().Str("port", cfg.Port).Msg("🚀 API running")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
