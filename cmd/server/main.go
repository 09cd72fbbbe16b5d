package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/itmaschool/attendance-admin/internal/app"
	"github.com/itmaschool/attendance-admin/internal/config"
	"github.com/itmaschool/attendance-admin/internal/controller/botengine"
	"github.com/itmaschool/attendance-admin/internal/controller/state"
	"github.com/itmaschool/attendance-admin/internal/notify"
	"github.com/itmaschool/attendance-admin/internal/repository"
	"github.com/itmaschool/attendance-admin/internal/server"
	"github.com/itmaschool/attendance-admin/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("Failed to connect to mongo", zap.Error(err))
	}
	defer db.Client().Disconnect(context.Background())

	if err := storage.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	tgBot, err := bot.New(cfg.BotToken)
	if err != nil {
		logger.Fatal("Failed to create telegram bot", zap.Error(err))
	}

	accounts := repository.NewAccountRepository(db)
	absences := repository.NewAbsenceRepository(db)
	news := repository.NewNewsRepository(db)

	notifier := notify.NewTelegramNotifier(tgBot, logger)
	sessions := state.NewManager()
	engine := botengine.NewEngine(accounts, news, sessions, notifier, cfg.AllowedChatIDs(), logger)

	router := server.NewRouter(cfg, engine, accounts, absences, news, notifier, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.Int("admin_chats", len(cfg.AllowedChatIDs())))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
