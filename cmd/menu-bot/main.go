package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/menuboard/internal/app"
	"github.com/vladislavdragonenkov/menuboard/internal/telegram"
)

// setupLogger настраивает формат и уровень логирования бота.
func setupLogger(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

// apiFactory создаёт клиент Telegram по токену.
type apiFactory func(token string) (telegram.API, error)

func newBotAPI(token string) (telegram.API, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return api, nil
}

// run поднимает меню и обслуживает бота до отмены ctx.
func run(ctx context.Context, cfg app.Config, newAPI apiFactory) error {
	if cfg.TelegramToken == "" {
		return fmt.Errorf("telegram token is required, set %s", app.EnvTelegramToken)
	}

	logger := log.WithField("component", "menu-bot")
	rt, err := app.NewRuntime(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(context.Background()); err != nil {
			logger.WithError(err).Warn("runtime closed with error")
		}
	}()

	// до окончания загрузки чаты видят seed
	rt.Menu.Restore(ctx)

	api, err := newAPI(cfg.TelegramToken)
	if err != nil {
		return fmt.Errorf("connect to telegram: %w", err)
	}

	bot := telegram.New(api, rt.Menu,
		telegram.WithMetrics(rt.Metrics),
		telegram.WithLogger(logger),
	)
	return bot.Run(ctx)
}

func main() {
	configPath := flag.String("config", "", "path to YAML config (fallback: "+app.EnvConfigFile+")")
	flag.Parse()

	cfg, warnings, err := app.LoadConfig(*configPath, app.DefaultEnvFile)
	setupLogger(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("не удалось загрузить конфигурацию")
	}
	for _, w := range warnings {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("storage", cfg.StorageDriver).Info("запускаем menu-bot")
	if err := run(ctx, cfg, newBotAPI); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("бот завершился с ошибкой")
	}
	log.Info("menu-bot остановлен")
}
