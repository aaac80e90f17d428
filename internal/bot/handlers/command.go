package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/akashic-rays/internal/bot/menus"
	"github.com/vladimiradmaev/akashic-rays/internal/bot/state"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	"github.com/vladimiradmaev/akashic-rays/internal/logger"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api          Sender
	deps         Dependencies
	stateManager state.StateManager
	reading      *ReadingHandler
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api Sender, deps Dependencies, stateManager state.StateManager, reading *ReadingHandler) *CommandHandler {
	return &CommandHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
		reading:      reading,
	}
}

// Commands is the list registered with Telegram
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Show the main menu"},
		{Command: "reading", Description: "Start a new reading"},
		{Command: "presets", Description: "Pick a famous profile"},
		{Command: "rays", Description: "Describe the seven rays"},
		{Command: "help", Description: "Show help"},
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *domain.ChatUser) error {
	logger.Infof("Handling command %s from user %d", message.Command(), user.TelegramID)

	switch message.Command() {
	case "start":
		return h.reading.SendMainMenu(ctx, message.Chat.ID, user)
	case "help":
		return menus.SendHelp(h.api, message.Chat.ID)
	case "reading":
		return h.reading.StartForm(ctx, message.Chat.ID, user)
	case "presets":
		if err := h.stateManager.ClearUserState(ctx, user.TelegramID); err != nil {
			return err
		}
		return menus.SendPresetGroups(h.api, message.Chat.ID, h.deps.ReadingSvc.Presets())
	case "rays":
		return menus.SendRays(h.api, message.Chat.ID)
	default:
		return h.handleUnknownCommand(message.Chat.ID)
	}
}

// handleUnknownCommand handles unknown commands
func (h *CommandHandler) handleUnknownCommand(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Unknown command. Use /help to see the available commands.")
	_, err := h.api.Send(msg)
	return err
}
