package handler

import (
	"github.com/go-telegram/bot"

	"github.com/set-night/placefinder/internal/config"
	"github.com/set-night/placefinder/internal/places"
	"github.com/set-night/placefinder/internal/session"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot      *bot.Bot
	cfg      *config.Config
	places   places.Searcher
	sessions *session.Store
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot      *bot.Bot
	Cfg      *config.Config
	Places   places.Searcher
	Sessions *session.Store
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:      deps.Bot,
		cfg:      deps.Cfg,
		places:   deps.Places,
		sessions: deps.Sessions,
	}
}
