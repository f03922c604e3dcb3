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

	"github.com/rudra/portfolio-gateway/internal/config"
	"github.com/rudra/portfolio-gateway/internal/handler"
	"github.com/rudra/portfolio-gateway/internal/logging"
	"github.com/rudra/portfolio-gateway/internal/repository"
	"github.com/rudra/portfolio-gateway/internal/service"
	"github.com/rudra/portfolio-gateway/pkg/genai"
)

func main() {
	// Load .env before logging setup so LOG_LEVEL from the file is honored.
	cfg, err := config.Load()
	logging.Setup()
	if err != nil {
		logging.Fatal("load config", "error", err)
	}

	// Startup probe: each credential is independently optional. A missing
	// or unreachable dependency narrows capability, never crashes startup.
	var contactRepo repository.ContactRepository
	var db handler.Pinger
	if cfg.StoreConfigured() {
		pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Warn("document store unreachable, contact form will only log", "error", err)
		} else {
			defer pool.Close()
			contactRepo = repository.NewPgContactRepository(pool)
			db = pool
		}
	} else {
		slog.Warn("DATABASE_URL not set, contact form will only log")
	}

	var chatClient genai.Client
	if cfg.ChatConfigured() {
		chatClient = genai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	} else {
		slog.Warn("OPENAI_API_KEY not set, chat endpoint degraded")
	}

	chatService := service.NewChatService(chatClient)
	contactService := service.NewContactService(contactRepo)

	h := handler.New(cfg.FrontendURL)
	chatHandler := handler.NewChatHandler(chatService)
	contactHandler := handler.NewContactHandler(contactService)
	healthHandler := handler.NewHealthHandler(db, chatClient != nil)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", healthHandler.Health)
	mux.HandleFunc("POST /api/chat", chatHandler.Chat)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)

	// The portfolio site itself: plain files, no contract beyond serving.
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler.RequestLogger(h.CORS(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("gateway listening", "addr", server.Addr,
			"chat", chatClient != nil, "store", contactRepo != nil)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
