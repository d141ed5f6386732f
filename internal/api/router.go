package api

import (
	"net/http"

	"github.com/Rrens/taskchat/internal/api/handler"
	customMiddleware "github.com/Rrens/taskchat/internal/api/middleware"
	"github.com/Rrens/taskchat/internal/config"
	"github.com/Rrens/taskchat/internal/llm"
	"github.com/Rrens/taskchat/internal/llm/anthropic"
	"github.com/Rrens/taskchat/internal/llm/openai"
	"github.com/Rrens/taskchat/internal/repository/orm"
	"github.com/Rrens/taskchat/internal/repository/redis"
	"github.com/Rrens/taskchat/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router. redisClient may be nil,
// in which case requests are not rate limited.
func NewRouter(cfg *config.Config, db *orm.DB, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(customMiddleware.Recoverer)
	r.Use(customMiddleware.SecurityHeaders)
	r.Use(customMiddleware.MaxBodySize(cfg.Server.MaxBodyBytes))
	if cfg.Server.MiddlewareTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))
	}

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID", "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize repositories
	taskRepo := orm.NewTaskRepository(db)
	sessionRepo := orm.NewSessionRepository(db)
	messageRepo := orm.NewMessageRepository(db)

	// Initialize LLM Router with providers
	llmRouter := llm.NewRouter(cfg.LLM.DefaultProvider)
	llmRouter.RegisterProvider(anthropic.NewProvider(cfg.LLM.Anthropic.APIKey, cfg.LLM.Anthropic.Model))
	llmRouter.RegisterProvider(openai.NewProvider(cfg.LLM.OpenAI.APIKey, cfg.LLM.OpenAI.Model))
	if !llmRouter.AnyConfigured() {
		log.Warn().Msg("No LLM API keys configured, /api/llm/chat will fail")
	}

	// Initialize services
	taskService := service.NewTaskService(taskRepo)
	chatService := service.NewChatService(sessionRepo, messageRepo)
	llmService := service.NewLLMService(llmRouter)

	// Initialize handlers
	errs := handler.NewErrorRenderer(cfg.IsProduction())
	taskHandler := handler.NewTaskHandler(taskService, errs)
	chatHandler := handler.NewChatHandler(chatService, errs)
	llmHandler := handler.NewLLMHandler(llmService, errs)

	apiLimit := passThrough
	llmLimit := passThrough
	if redisClient != nil {
		apiLimit = customMiddleware.NewRateLimitMiddleware(
			redis.NewRateLimiter(redisClient, "api", cfg.RateLimit.API),
			"Too many requests from this IP, please try again later.",
		).Limit
		llmLimit = customMiddleware.NewRateLimitMiddleware(
			redis.NewRateLimiter(redisClient, "llm", cfg.RateLimit.LLM),
			"Too many LLM requests, please try again later.",
		).Limit
	} else {
		log.Info().Msg("Redis disabled, rate limiting is off")
	}

	r.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		r.Group(func(r chi.Router) {
			r.Use(apiLimit)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)
				r.Put("/{id}", taskHandler.Update)
				r.Delete("/{id}", taskHandler.Delete)
				r.Patch("/{id}/priority", taskHandler.TogglePriority)
			})

			r.Route("/chats", func(r chi.Router) {
				r.Get("/", chatHandler.ListSessions)
				r.Post("/", chatHandler.CreateSession)
				r.Delete("/{id}", chatHandler.DeleteSession)
				r.Get("/{id}/messages", chatHandler.ListMessages)
				r.Post("/{id}/messages", chatHandler.SendMessage)
				r.Post("/{id}/clear", chatHandler.ClearHistory)
			})

			r.Route("/llm", func(r chi.Router) {
				r.Get("/providers", llmHandler.Providers)
				r.With(llmLimit).Post("/chat", llmHandler.Chat)
			})
		})
	})

	return r
}

func passThrough(next http.Handler) http.Handler {
	return next
}
