package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/akashic-rays/internal/bot/keyboards"
	"github.com/vladimiradmaev/akashic-rays/internal/bot/menus"
	"github.com/vladimiradmaev/akashic-rays/internal/bot/state"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	"github.com/vladimiradmaev/akashic-rays/internal/logger"
	"github.com/vladimiradmaev/akashic-rays/internal/render"
)

// ReadingHandler starts the reading form, sends readings and switches their tabs
type ReadingHandler struct {
	api          Sender
	deps         Dependencies
	stateManager state.StateManager
	renderer     *render.Renderer
}

// NewReadingHandler creates a new reading handler
func NewReadingHandler(api Sender, deps Dependencies, stateManager state.StateManager) *ReadingHandler {
	return &ReadingHandler{
		api:          api,
		deps:         deps,
		stateManager: stateManager,
		renderer:     render.New(render.Markdown),
	}
}

// StartForm resets the session and asks for the name
func (h *ReadingHandler) StartForm(ctx context.Context, chatID int64, user *domain.ChatUser) error {
	if err := h.stateManager.ClearTempData(ctx, user.TelegramID); err != nil {
		return err
	}
	if err := h.stateManager.SetUserState(ctx, user.TelegramID, state.WaitingForName); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, "🔮 *New reading*\n\nWhat is the full name?")
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboards.CancelForm()
	_, err := h.api.Send(msg)
	return err
}

// SendReading resolves the profile, remembers it for tab switches and sends the overview
func (h *ReadingHandler) SendReading(ctx context.Context, chatID int64, user *domain.ChatUser, profile domain.UserProfile) error {
	reading := h.deps.ReadingSvc.Resolve(ctx, profile)

	if err := h.stateManager.ClearUserState(ctx, user.TelegramID); err != nil {
		return err
	}
	if err := h.stateManager.ClearTempData(ctx, user.TelegramID); err != nil {
		return err
	}
	if err := state.SaveProfile(ctx, h.stateManager, user.TelegramID, profile); err != nil {
		return err
	}
	if err := h.stateManager.SetTempData(ctx, user.TelegramID, state.KeyReadingID, reading.ID); err != nil {
		return err
	}

	logger.Info("Sending reading",
		"reading_id", reading.ID,
		"user_id", user.TelegramID,
		"cohort", string(reading.Cohort),
	)

	msg := tgbotapi.NewMessage(chatID, h.renderer.Overview(reading.Result))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboards.ReadingTabs(render.TabOverview)
	_, err := h.api.Send(msg)
	if isParseError(err) {
		// If Markdown parsing fails, try sending without Markdown
		msg.ParseMode = ""
		_, err = h.api.Send(msg)
	}
	return err
}

// ShowTab re-resolves the remembered profile and edits the reading message in place
func (h *ReadingHandler) ShowTab(ctx context.Context, chatID int64, messageID int, user *domain.ChatUser, tab render.Tab) error {
	profile, ok, err := state.LoadProfile(ctx, h.stateManager, user.TelegramID)
	if err != nil {
		return err
	}
	if !ok {
		msg := tgbotapi.NewMessage(chatID, "This reading has expired. Start a new one or pick a preset.")
		msg.ReplyMarkup = keyboards.MainMenu()
		_, err := h.api.Send(msg)
		return err
	}

	readingID, _, err := h.stateManager.GetTempData(ctx, user.TelegramID, state.KeyReadingID)
	if err != nil {
		return err
	}
	reading := h.deps.ReadingSvc.Reopen(ctx, readingID, profile)
	result := reading.Result

	synthesis := ""
	if tab == render.TabVehicles {
		synthesis, err = h.synthesis(ctx, chatID, user, result)
		if err != nil {
			return err
		}
	}

	text := h.renderer.Tab(tab, result, synthesis)
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboards.ReadingTabs(tab))
	edit.ParseMode = tgbotapi.ModeMarkdown
	_, err = h.api.Send(edit)
	switch {
	case err == nil, isNotModified(err):
		logger.Debug("Tab shown", "reading_id", reading.ID, "tab", string(tab))
		return nil
	case isParseError(err):
		edit.ParseMode = ""
		_, err = h.api.Send(edit)
		return err
	default:
		return err
	}
}

// synthesis returns the cached paragraph for the current reading or asks the narrator
func (h *ReadingHandler) synthesis(ctx context.Context, chatID int64, user *domain.ChatUser, result domain.AnalysisResult) (string, error) {
	cached, ok, err := h.stateManager.GetTempData(ctx, user.TelegramID, state.KeySynthesis)
	if err != nil {
		return "", err
	}
	if ok && cached != "" {
		return cached, nil
	}

	if _, err := h.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		logger.Debug("Failed to send typing action", "error", err)
	}

	text := h.deps.ReadingSvc.Synthesize(ctx, result)
	if err := h.stateManager.SetTempData(ctx, user.TelegramID, state.KeySynthesis, text); err != nil {
		return "", err
	}
	return text, nil
}

// SendMainMenu resets the form and shows the main menu
func (h *ReadingHandler) SendMainMenu(ctx context.Context, chatID int64, user *domain.ChatUser) error {
	if err := h.stateManager.ClearUserState(ctx, user.TelegramID); err != nil {
		return err
	}
	return menus.SendMainMenu(h.api, chatID)
}

// isParseError reports Telegram rejecting the Markdown entities of a message
func isParseError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "can't parse entities")
}

// isNotModified reports an edit that would leave the message unchanged
func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
