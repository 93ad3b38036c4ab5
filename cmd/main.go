package main

import (
	"log"

	"github.com/thanhnt94/newmindstack-sub001/internal/audio"
	"github.com/thanhnt94/newmindstack-sub001/internal/bot"
	"github.com/thanhnt94/newmindstack-sub001/internal/client"
	"github.com/thanhnt94/newmindstack-sub001/internal/config"
	"github.com/thanhnt94/newmindstack-sub001/internal/repository"
	"github.com/thanhnt94/newmindstack-sub001/internal/session"
	"github.com/thanhnt94/newmindstack-sub001/internal/storage/cache"
	"github.com/thanhnt94/newmindstack-sub001/internal/storage/db"

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
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(db)

	clients := client.InitClients(cfg.API)
	audioHelper := audio.NewHelper(clients.SessionAPI, logger)
	cache := cache.NewCache()

	factory := bot.SessionFactory(func(pres session.PresenterI) *session.Controller {
		return session.NewController(clients.SessionAPI, audioHelper, pres, repos.JournalR, cfg.Session, logger)
	})

	deps := bot.ReviewDeps{
		Factory:  factory,
		Audio:    audioHelper,
		Journal:  repos.JournalR,
		Settings: clients.SessionAPI,
		AudioCfg: cfg.Audio,
		Log:      logger,
	}

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, deps, cache)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
