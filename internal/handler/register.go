package handler

import (
	"github.com/go-telegram/bot"

	"github.com/set-night/placefinder/internal/render"
)

// Register registers all command and callback handlers on the bot instance.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypePrefix, h.handleCancel)

	// Results browser callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, render.CallbackDetailsPrefix, bot.MatchTypePrefix, h.handleDetails)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, render.CallbackBackToList, bot.MatchTypePrefix, h.handleBackToList)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, render.CallbackFindMore, bot.MatchTypePrefix, h.handleFindMore)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, render.CallbackNewSearch, bot.MatchTypePrefix, h.handleNewSearch)

	// Free-form text is routed from main: dialogue stages consume it
}
