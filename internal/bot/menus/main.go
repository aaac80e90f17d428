package menus

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/bot/keyboards"
	"github.com/vladimiradmaev/akashic-rays/internal/render"
)

// Sender is the part of the Telegram API the bot uses. *tgbotapi.BotAPI implements it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

const helpText = `Available commands:
/start - Show the main menu
/reading - Start a new reading
/presets - Pick a famous profile
/rays - Describe the seven rays
/help - Show this message

A reading asks for a name, birth date, birth time and birth place.
Any text is accepted; send "-" when a detail is unknown.
Open the tabs under a reading to see the zodiac comparison, starseed origins, karmic study and ray vehicles.`

// SendMainMenu sends the main menu to a chat
func SendMainMenu(api Sender, chatID int64) error {
	text := `🔮 *Akashic Rays* maps a profile onto the Seven Rays

• Four zodiac systems side by side
• Starseed connections and past-life records
• Karmic debt ray and the six ray vehicles

Choose an action:`

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// SendHelp sends the command reference
func SendHelp(api Sender, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, helpText)
	msg.ReplyMarkup = keyboards.BackToMenu()
	_, err := api.Send(msg)
	return err
}

// SendPresetGroups sends the cohort picker
func SendPresetGroups(api Sender, chatID int64, groups []akashic.PresetGroup) error {
	msg := tgbotapi.NewMessage(chatID, "Choose a group of famous profiles:")
	msg.ReplyMarkup = keyboards.PresetGroups(groups)
	_, err := api.Send(msg)
	return err
}

// SendPresetProfiles sends the names of one cohort
func SendPresetProfiles(api Sender, chatID int64, groupIndex int, group akashic.PresetGroup) error {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("%s: choose a profile", group.Title))
	msg.ReplyMarkup = keyboards.PresetProfiles(groupIndex, group)
	_, err := api.Send(msg)
	return err
}

// SendRays sends the seven ray reference
func SendRays(api Sender, chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, render.New(render.Markdown).Rays())
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboards.BackToMenu()
	_, err := api.Send(msg)
	return err
}
