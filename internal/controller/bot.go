package controller

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/controller/handlers"
	"github.com/provkin/tgbot/internal/controller/state"
	"github.com/provkin/tgbot/internal/service"
)

type BotController struct {
	bot      *bot.Bot
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	adminID int64,
	registrationService *service.RegistrationService,
	paymentService *service.PaymentService,
	eventService *service.EventService,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер сессий
	sessions := state.NewManager()

	h := handlers.NewHandlers(
		botInstance,
		adminID,
		sessions,
		registrationService,
		paymentService,
		eventService,
		logger,
	)

	return &BotController{
		bot:      botInstance,
		handlers: h,
		logger:   logger,
	}
}

// HandleUpdate передаёт события, не перехваченные командами,
// в общий маршрутизатор. Регистрируется как default handler бота.
func (c *BotController) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	c.handlers.HandleUpdate(ctx, b, update)
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать регистрацию"},
		{Command: "cancel", Description: "❌ Отменить текущий диалог"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
