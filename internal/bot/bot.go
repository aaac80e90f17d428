package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/akashic-rays/internal/bot/handlers"
	"github.com/vladimiradmaev/akashic-rays/internal/bot/state"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	apperrors "github.com/vladimiradmaev/akashic-rays/internal/errors"
	"github.com/vladimiradmaev/akashic-rays/internal/logger"
)

// Bot polls Telegram for updates and dispatches them to the handlers
type Bot struct {
	api           *tgbotapi.BotAPI
	updateHandler *handlers.UpdateHandler
	errorHandler  *apperrors.Handler
}

var _ domain.BotService = (*Bot)(nil)

// NewBot creates a new bot
func NewBot(token string, deps handlers.Dependencies, stateManager state.StateManager) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, apperrors.NewTelegramError(fmt.Errorf("failed to create bot: %w", err), "getMe")
	}

	logger.Info("Bot authorized", "account", api.Self.UserName)
	return &Bot{
		api:           api,
		updateHandler: handlers.NewUpdateHandler(api, deps, stateManager),
		errorHandler:  apperrors.NewHandler(logger.GetLogger()),
	}, nil
}

// Start registers the command list and processes updates until ctx is done
func (b *Bot) Start(ctx context.Context) error {
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(handlers.Commands()...)); err != nil {
		b.errorHandler.Handle(ctx, apperrors.NewTelegramError(err, "setMyCommands"))
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	logger.Info("Bot is now listening for updates")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Bot is shutting down")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				logger.Info("Update channel closed")
				return nil
			}
			if update.Message != nil && update.Message.From != nil {
				logger.WithFields("update_id", update.UpdateID).
					Debugw("Received message", "user_id", update.Message.From.ID)
			}
			if err := b.updateHandler.Handle(ctx, update); err != nil {
				b.errorHandler.Handle(ctx, err)
			}
		}
	}
}

// Stop ends long polling
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}
