package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/provkin/tgbot/internal/app"
	"github.com/provkin/tgbot/internal/config"
	"github.com/provkin/tgbot/internal/controller"
	"github.com/provkin/tgbot/internal/disk"
	"github.com/provkin/tgbot/internal/model"
	"github.com/provkin/tgbot/internal/repository"
	"github.com/provkin/tgbot/internal/repository/ledger"
	"github.com/provkin/tgbot/internal/service"
)

const stagingDir = "tmp"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Клиент Яндекс.Диска и раскладка папок
	diskClient := disk.NewYandexClient(cfg.YandexToken, logger)
	if err := app.EnsureFolders(ctx, diskClient, logger); err != nil {
		logger.Sugar().Fatalw("Failed to prepare disk folders", "error", err)
	}

	// Бот создаётся раньше сервисов: он же канал уведомлений.
	// Default handler замыкается на контроллер, который собирается ниже.
	var ctrl *controller.BotController
	b, err := bot.New(cfg.TelegramToken, bot.WithDefaultHandler(
		func(ctx context.Context, b *bot.Bot, update *models.Update) {
			ctrl.HandleUpdate(ctx, b, update)
		},
	))
	if err != nil {
		logger.Sugar().Fatalw("Failed to create bot", "error", err)
	}

	// Репозитории поверх общего леджера
	ledgerStore := ledger.New(diskClient, stagingDir, logger)
	students := repository.NewStudentRepository(ledgerStore, logger)
	events := repository.NewEventRepository(ledgerStore, logger)

	// Сервисы
	notifier := service.NewNotifier(b, cfg.AdminID, logger)
	media := service.NewMediaService(diskClient, stagingDir, logger)
	registrationService := service.NewRegistrationService(students, media, notifier, model.DefaultCatalog(), logger)
	paymentService := service.NewPaymentService(students, media, notifier, logger)
	eventService := service.NewEventService(events, logger)

	ctrl = controller.NewBotController(
		b,
		cfg.AdminID,
		registrationService,
		paymentService,
		eventService,
		logger,
	)

	if err := ctrl.RegisterHandlers(ctx); err != nil {
		logger.Sugar().Fatalw("Failed to register handlers", "error", err)
	}

	logger.Sugar().Infow("Starting school bot",
		"environment", cfg.Environment,
		"admin_id", cfg.AdminID)

	if err := ctrl.Start(ctx); err != nil {
		logger.Sugar().Fatalw("Bot stopped with error", "error", err)
	}

	logger.Info("Shutdown complete")
}
