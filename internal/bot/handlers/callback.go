package handlers

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/akashic-rays/internal/bot/keyboards"
	"github.com/vladimiradmaev/akashic-rays/internal/bot/menus"
	"github.com/vladimiradmaev/akashic-rays/internal/bot/state"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	"github.com/vladimiradmaev/akashic-rays/internal/logger"
	"github.com/vladimiradmaev/akashic-rays/internal/render"
)

// CallbackHandler handles callback query messages
type CallbackHandler struct {
	api          Sender
	deps         Dependencies
	stateManager state.StateManager
	reading      *ReadingHandler
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api Sender, deps Dependencies, stateManager state.StateManager, reading *ReadingHandler) *CallbackHandler {
	return &CallbackHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
		reading:      reading,
	}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery, user *domain.ChatUser) error {
	if err := h.answer(query); err != nil {
		return err
	}

	chatID := query.Message.Chat.ID

	switch data := query.Data; {
	case data == keyboards.MainMenuData:
		return h.reading.SendMainMenu(ctx, chatID, user)
	case data == keyboards.NewReadingData:
		return h.reading.StartForm(ctx, chatID, user)
	case data == keyboards.PresetsData:
		return menus.SendPresetGroups(h.api, chatID, h.deps.ReadingSvc.Presets())
	case data == keyboards.RaysData:
		return menus.SendRays(h.api, chatID)
	case data == keyboards.HelpData:
		return menus.SendHelp(h.api, chatID)
	case strings.HasPrefix(data, keyboards.PresetGroupPrefix):
		return h.handlePresetGroup(chatID, strings.TrimPrefix(data, keyboards.PresetGroupPrefix))
	case strings.HasPrefix(data, keyboards.PresetPrefix):
		return h.handlePreset(ctx, chatID, user, strings.TrimPrefix(data, keyboards.PresetPrefix))
	case strings.HasPrefix(data, keyboards.TabPrefix):
		return h.handleTab(ctx, query.Message, user, strings.TrimPrefix(data, keyboards.TabPrefix))
	default:
		return h.handleUnknownCallback(chatID, data)
	}
}

// answer stops the client's loading spinner
func (h *CallbackHandler) answer(query *tgbotapi.CallbackQuery) error {
	_, err := h.api.Request(tgbotapi.NewCallback(query.ID, ""))
	return err
}

// handlePresetGroup shows the names of one cohort
func (h *CallbackHandler) handlePresetGroup(chatID int64, payload string) error {
	index, err := strconv.Atoi(payload)
	groups := h.deps.ReadingSvc.Presets()
	if err != nil || index < 0 || index >= len(groups) {
		return h.handleUnknownCallback(chatID, keyboards.PresetGroupPrefix+payload)
	}
	return menus.SendPresetProfiles(h.api, chatID, index, groups[index])
}

// handlePreset resolves a quick-select profile. Payload is "<group>:<index>".
func (h *CallbackHandler) handlePreset(ctx context.Context, chatID int64, user *domain.ChatUser, payload string) error {
	groupPart, indexPart, found := strings.Cut(payload, ":")
	group, groupErr := strconv.Atoi(groupPart)
	index, indexErr := strconv.Atoi(indexPart)
	if !found || groupErr != nil || indexErr != nil {
		return h.handleUnknownCallback(chatID, keyboards.PresetPrefix+payload)
	}

	profile, ok := h.deps.ReadingSvc.Preset(group, index)
	if !ok {
		return h.handleUnknownCallback(chatID, keyboards.PresetPrefix+payload)
	}
	return h.reading.SendReading(ctx, chatID, user, profile)
}

// handleTab switches the reading message to another view
func (h *CallbackHandler) handleTab(ctx context.Context, message *tgbotapi.Message, user *domain.ChatUser, payload string) error {
	tab, ok := render.ParseTab(payload)
	if !ok {
		return h.handleUnknownCallback(message.Chat.ID, keyboards.TabPrefix+payload)
	}
	return h.reading.ShowTab(ctx, message.Chat.ID, message.MessageID, user, tab)
}

// handleUnknownCallback handles stale or malformed callback data
func (h *CallbackHandler) handleUnknownCallback(chatID int64, data string) error {
	logger.Warn("Unknown callback data", "data", data, "chat_id", chatID)
	msg := tgbotapi.NewMessage(chatID, "This button is no longer available.")
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := h.api.Send(msg)
	return err
}
