package handlers

import (
	"context"
	stderrors "errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/akashic-rays/internal/bot/state"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	apperrors "github.com/vladimiradmaev/akashic-rays/internal/errors"
)

// UpdateHandler handles telegram updates and coordinates other handlers
type UpdateHandler struct {
	callbackHandler *CallbackHandler
	commandHandler  *CommandHandler
	textHandler     *TextHandler
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(api Sender, deps Dependencies, stateManager state.StateManager) *UpdateHandler {
	reading := NewReadingHandler(api, deps, stateManager)
	return &UpdateHandler{
		callbackHandler: NewCallbackHandler(api, deps, stateManager, reading),
		commandHandler:  NewCommandHandler(api, deps, stateManager, reading),
		textHandler:     NewTextHandler(api, stateManager, reading),
	}
}

// Handle processes a telegram update. Errors that are not already classified
// are reported as Telegram transport errors.
func (h *UpdateHandler) Handle(ctx context.Context, update tgbotapi.Update) error {
	user := chatUser(update)
	if user == nil {
		// Inline-mode callbacks have no chat to reply in but still need an answer.
		if update.CallbackQuery == nil {
			return nil
		}
		if err := h.callbackHandler.answer(update.CallbackQuery); err != nil {
			return apperrors.NewTelegramError(err, "callback")
		}
		return nil
	}

	var err error
	kind := "message"
	switch {
	case update.CallbackQuery != nil:
		kind = "callback"
		err = h.callbackHandler.Handle(ctx, update.CallbackQuery, user)
	case update.Message.IsCommand():
		kind = "command"
		err = h.commandHandler.Handle(ctx, update.Message, user)
	case update.Message.Text != "":
		err = h.textHandler.Handle(ctx, update.Message, user)
	}

	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.WithContext("user_id", user.TelegramID)
	}
	return apperrors.NewTelegramError(err, kind).WithContext("user_id", user.TelegramID)
}

// chatUser extracts the sender of an update. Updates without one are ignored.
func chatUser(update tgbotapi.Update) *domain.ChatUser {
	var from *tgbotapi.User
	var chat *tgbotapi.Chat

	switch {
	case update.CallbackQuery != nil:
		from = update.CallbackQuery.From
		if update.CallbackQuery.Message != nil {
			chat = update.CallbackQuery.Message.Chat
		}
	case update.Message != nil:
		from = update.Message.From
		chat = update.Message.Chat
	}

	if from == nil || chat == nil {
		return nil
	}
	return &domain.ChatUser{
		TelegramID: from.ID,
		ChatID:     chat.ID,
		Username:   from.UserName,
		FirstName:  from.FirstName,
	}
}
