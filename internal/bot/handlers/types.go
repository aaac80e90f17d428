package handlers

import (
	"github.com/vladimiradmaev/akashic-rays/internal/bot/menus"
	"github.com/vladimiradmaev/akashic-rays/internal/interfaces"
)

// Sender is the Telegram API surface used by handlers
type Sender = menus.Sender

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	ReadingSvc interfaces.ReadingServiceInterface
}
