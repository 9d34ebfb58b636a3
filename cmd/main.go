package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/realarnold928/funwords-game/internal/bot"
	"github.com/realarnold928/funwords-game/internal/config"
	"github.com/realarnold928/funwords-game/internal/repository"
	"github.com/realarnold928/funwords-game/internal/service"
	"github.com/realarnold928/funwords-game/internal/storage/cache"
	"github.com/realarnold928/funwords-game/internal/storage/db"
	"github.com/realarnold928/funwords-game/internal/vocab"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()

	if err := db.EnsureSchema(ctx, database); err != nil {
		logger.Fatal("failed apply schema", zap.Error(err))
	}

	repo := repository.NewRepository(database)

	if cfg.App.SeedVocab {
		if err := vocab.Seed(ctx, repo.WordsR, logger); err != nil {
			logger.Fatal("failed seed vocabulary", zap.Error(err))
		}
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	services := service.InitServices(repo, cache.NewCache(), rnd, logger)
	defer services.Wait()

	telegram, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services)
	if err != nil {
		logger.Fatal("failed init telegram bot", zap.Error(err))
	}

	logger.Info("bot started", zap.String("env", cfg.Env))

	telegram.Start()
}
