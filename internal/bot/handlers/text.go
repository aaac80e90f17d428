package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/akashic-rays/internal/bot/keyboards"
	"github.com/vladimiradmaev/akashic-rays/internal/bot/state"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
)

// unknownMarker lets the user skip a birth detail
const unknownMarker = "-"

// formStep is one question of the reading form
type formStep struct {
	key    string
	next   string
	prompt string
}

var formSteps = map[string]formStep{
	state.WaitingForName: {
		key:    state.KeyName,
		next:   state.WaitingForBirthDate,
		prompt: "📅 Birth date? Any format works, for example 1875-07-26 or 356 BC. Send - if unknown.",
	},
	state.WaitingForBirthDate: {
		key:    state.KeyBirthDate,
		next:   state.WaitingForBirthTime,
		prompt: "🕰 Birth time? For example 19:29 or Dawn. Send - if unknown.",
	},
	state.WaitingForBirthTime: {
		key:    state.KeyBirthTime,
		next:   state.WaitingForBirthPlace,
		prompt: "📍 Birth place? Send - if unknown.",
	},
}

// TextHandler handles text messages
type TextHandler struct {
	api          Sender
	stateManager state.StateManager
	reading      *ReadingHandler
}

// NewTextHandler creates a new text handler
func NewTextHandler(api Sender, stateManager state.StateManager, reading *ReadingHandler) *TextHandler {
	return &TextHandler{
		api:          api,
		stateManager: stateManager,
		reading:      reading,
	}
}

// Handle processes a text message
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *domain.ChatUser) error {
	userState, err := h.stateManager.GetUserState(ctx, user.TelegramID)
	if err != nil {
		return err
	}

	value := formValue(message.Text)

	switch userState {
	case state.WaitingForName, state.WaitingForBirthDate, state.WaitingForBirthTime:
		step := formSteps[userState]
		if err := h.stateManager.SetTempData(ctx, user.TelegramID, step.key, value); err != nil {
			return err
		}
		if err := h.stateManager.SetUserState(ctx, user.TelegramID, step.next); err != nil {
			return err
		}
		msg := tgbotapi.NewMessage(message.Chat.ID, step.prompt)
		msg.ReplyMarkup = keyboards.CancelForm()
		_, err := h.api.Send(msg)
		return err

	case state.WaitingForBirthPlace:
		if err := h.stateManager.SetTempData(ctx, user.TelegramID, state.KeyBirthPlace, value); err != nil {
			return err
		}
		profile, ok, err := state.LoadProfile(ctx, h.stateManager, user.TelegramID)
		if err != nil {
			return err
		}
		if !ok {
			return h.reading.StartForm(ctx, message.Chat.ID, user)
		}
		return h.reading.SendReading(ctx, message.Chat.ID, user, profile)

	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Please use the menu to choose an action.")
		msg.ReplyMarkup = keyboards.MainMenu()
		_, err := h.api.Send(msg)
		return err
	}
}

// formValue trims one answer; "-" means unknown
func formValue(text string) string {
	text = strings.TrimSpace(text)
	if text == unknownMarker {
		return ""
	}
	return text
}
