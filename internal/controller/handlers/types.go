package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/controller/state"
	"github.com/provkin/tgbot/internal/service"
)

// telegramAPI — часть API бота, которой пользуются обработчики.
// *bot.Bot реализует интерфейс; в тестах подставляется фейк.
type telegramAPI interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
	GetFile(ctx context.Context, params *bot.GetFileParams) (*models.File, error)
	FileDownloadLink(f *models.File) string
}

// Handlers содержит все зависимости для обработки сообщений
type Handlers struct {
	tg           telegramAPI
	adminID      int64
	sessions     *state.Manager
	registration *service.RegistrationService
	payments     *service.PaymentService
	events       *service.EventService
	logger       *zap.Logger
}

// NewHandlers создаёт обработчики бота
func NewHandlers(
	tg telegramAPI,
	adminID int64,
	sessions *state.Manager,
	registration *service.RegistrationService,
	payments *service.PaymentService,
	events *service.EventService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		tg:           tg,
		adminID:      adminID,
		sessions:     sessions,
		registration: registration,
		payments:     payments,
		events:       events,
		logger:       logger,
	}
}
