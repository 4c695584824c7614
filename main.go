package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fitflow/ai-gateway/pkg/database"
	"github.com/fitflow/ai-gateway/pkg/gateway"
	"github.com/fitflow/ai-gateway/pkg/llm/groq"
	"github.com/fitflow/ai-gateway/pkg/llm/huggingface"
	"github.com/fitflow/ai-gateway/pkg/llm/openai"
	"github.com/fitflow/ai-gateway/pkg/logger"
	"github.com/fitflow/ai-gateway/pkg/render"
	"github.com/fitflow/ai-gateway/pkg/repository"
	"github.com/fitflow/ai-gateway/pkg/server/handlers"
	"github.com/fitflow/ai-gateway/pkg/server/middleware"
	"github.com/fitflow/ai-gateway/pkg/services"
)

type Config struct {
	GroqAPIKey       string        `env:"GROQ_API_KEY,required"`
	HuggingFaceToken string        `env:"HUGGING_FACE_ACCESS_TOKEN"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"`
	HTTPPort         int           `env:"HTTP_PORT" envDefault:"8080"`
	PgURL            string        `env:"DATABASE_URL"`
	PgHost           string        `env:"DB_HOST" envDefault:"localhost:5432"`
	HistoryRetention time.Duration `env:"HISTORY_RETENTION" envDefault:"720h"`
	GinMode          string        `env:"GIN_MODE" envDefault:"release"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	svcGroup, err := setupServices()
	if err != nil {
		return err
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return svcGroup.Start(ctx)
}

func setupServices() (services.Group, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	var svcGroup services.Group

	db, err := database.NewDB(cfg.PgURL, cfg.PgHost)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	groqClient, err := groq.NewClient(cfg.GroqAPIKey)
	if err != nil {
		return nil, fmt.Errorf("creating groq client: %w", err)
	}

	classifier := gateway.NewClassifier(groqClient)

	// Providers in preference order: "auto" picks the first configured one.
	var imageProviders []gateway.ImageProvider
	if cfg.HuggingFaceToken != "" {
		hfClient, err := huggingface.NewClient(cfg.HuggingFaceToken)
		if err != nil {
			return nil, fmt.Errorf("creating hugging face client: %w", err)
		}
		imageProviders = append(imageProviders, gateway.NewHuggingFaceProvider(hfClient, classifier))
	}
	if cfg.OpenAIAPIKey != "" {
		openAIClient, err := openai.NewClient(cfg.OpenAIAPIKey)
		if err != nil {
			return nil, fmt.Errorf("creating open ai client: %w", err)
		}
		imageProviders = append(imageProviders, gateway.NewOpenAIProvider(openAIClient))
	}

	textGateway := gateway.NewTextGateway(groqClient, render.Markdown{})
	imageGateway := gateway.NewImageGateway(imageProviders...)
	promptRepository := repository.NewPromptRepository(db)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.CORS(),
		middleware.Logging(),
	)

	router.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := router.Group("/api/v1")
	api.POST("/generate", handlers.GenerateText(textGateway, promptRepository))
	api.POST("/images", handlers.GenerateImage(imageGateway, promptRepository))
	api.POST("/images/regenerations", handlers.RegenerateImage(promptRepository, imageGateway))
	api.GET("/models", handlers.ListModels())
	api.GET("/history", handlers.History(promptRepository))

	httpServer, err := services.NewHTTPServer(cfg.HTTPPort, router)
	if err != nil {
		return nil, err
	}
	svcGroup = append(svcGroup, httpServer)

	historyCleaner, err := services.NewHistoryCleaner(promptRepository, cfg.HistoryRetention)
	if err != nil {
		return nil, err
	}
	svcGroup = append(svcGroup, historyCleaner)

	return svcGroup, nil
}
