package keyboards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/render"
)

func TestCallbackDataFormats(t *testing.T) {
	assert.Equal(t, "preset_group:2", PresetGroupData(2))
	assert.Equal(t, "preset:1:3", PresetData(1, 3))
	assert.Equal(t, "tab:karmic", TabData(render.TabKarmic))
}

func TestReadingTabsMarksActiveTab(t *testing.T) {
	kb := ReadingTabs(render.TabKarmic)
	require.Len(t, kb.InlineKeyboard, 3)

	var labels []string
	for _, row := range kb.InlineKeyboard[:2] {
		for _, btn := range row {
			labels = append(labels, btn.Text)
			require.NotNil(t, btn.CallbackData)
			assert.LessOrEqual(t, len(*btn.CallbackData), 64)
		}
	}
	assert.Equal(t, []string{"Overview", "Origins", "• Karmic", "Vehicles"}, labels)
}

func TestPresetKeyboards(t *testing.T) {
	groups := akashic.Presets()

	kb := PresetGroups(groups)
	require.Len(t, kb.InlineKeyboard, len(groups)+1)
	assert.Equal(t, PresetGroupData(0), *kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, MainMenuData, *kb.InlineKeyboard[len(groups)][0].CallbackData)

	kb = PresetProfiles(3, groups[3])
	require.Len(t, kb.InlineKeyboard, 3)
	assert.Equal(t, PresetData(3, 1), *kb.InlineKeyboard[0][1].CallbackData)
	assert.Equal(t, PresetsData, *kb.InlineKeyboard[2][0].CallbackData)

	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			assert.LessOrEqual(t, len(*btn.CallbackData), 64)
		}
	}
}
