package keyboards

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/render"
)

// Callback data
const (
	MainMenuData   = "main_menu"
	NewReadingData = "new_reading"
	PresetsData    = "presets"
	RaysData       = "rays"
	HelpData       = "help"

	PresetGroupPrefix = "preset_group:"
	PresetPrefix      = "preset:"
	TabPrefix         = "tab:"
)

// MainMenu creates the main menu keyboard
func MainMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔮 New reading", NewReadingData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Presets", PresetsData),
			tgbotapi.NewInlineKeyboardButtonData("🌈 Seven rays", RaysData),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❓ Help", HelpData),
		),
	)
}

// BackToMenu is a single button returning to the main menu
func BackToMenu() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", MainMenuData),
		),
	)
}

// CancelForm aborts the reading form
func CancelForm() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Cancel", MainMenuData),
		),
	)
}

// PresetGroups lists the preset cohorts
func PresetGroups(groups []akashic.PresetGroup) tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup()
	for i, g := range groups {
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard,
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(g.Title, PresetGroupData(i)),
			),
		)
	}
	keyboard.InlineKeyboard = append(keyboard.InlineKeyboard,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", MainMenuData),
		),
	)
	return keyboard
}

// PresetProfiles lists the names of one cohort, two per row
func PresetProfiles(groupIndex int, group akashic.PresetGroup) tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup()
	var row []tgbotapi.InlineKeyboardButton
	for i, p := range group.Profiles {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(p.Name, PresetData(groupIndex, i)))
		if len(row) == 2 {
			keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, row)
			row = nil
		}
	}
	if len(row) > 0 {
		keyboard.InlineKeyboard = append(keyboard.InlineKeyboard, row)
	}
	keyboard.InlineKeyboard = append(keyboard.InlineKeyboard,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("◀️ Back", PresetsData),
		),
	)
	return keyboard
}

// ReadingTabs switches between the views of a reading. The active tab is marked.
func ReadingTabs(active render.Tab) tgbotapi.InlineKeyboardMarkup {
	var tabs []tgbotapi.InlineKeyboardButton
	for _, tab := range render.Tabs() {
		label := tab.Title()
		if tab == active {
			label = "• " + label
		}
		tabs = append(tabs, tgbotapi.NewInlineKeyboardButtonData(label, TabData(tab)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tabs[:2],
		tabs[2:],
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔮 New reading", NewReadingData),
			tgbotapi.NewInlineKeyboardButtonData("◀️ Main menu", MainMenuData),
		),
	)
}

func PresetGroupData(group int) string {
	return fmt.Sprintf("%s%d", PresetGroupPrefix, group)
}

func PresetData(group, index int) string {
	return fmt.Sprintf("%s%d:%d", PresetPrefix, group, index)
}

func TabData(tab render.Tab) string {
	return TabPrefix + string(tab)
}
