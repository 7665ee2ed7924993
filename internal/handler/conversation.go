package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/placefinder/internal/config"
	"github.com/set-night/placefinder/internal/domain"
	"github.com/set-night/placefinder/internal/i18n"
	"github.com/set-night/placefinder/internal/places"
	tg "github.com/set-night/placefinder/internal/telegram"
)

// HandleText advances the onboarding dialogue with the user's free text.
// Text outside a linear stage is ignored; the user is expected to press
// buttons while browsing.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	sess, ok := h.sessions.Get(chatID)
	if !ok {
		slog.Debug("text without session", "chat_id", chatID)
		return
	}

	switch sess.Stage {
	case domain.StageAwaitingLanguage:
		sess.Language = i18n.DetectLanguage(text)
		sess.Stage = domain.StageAwaitingCategory
		h.sessions.Put(sess)

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        i18n.T(i18n.KeyCategoryPrompt, sess.Language),
			ReplyMarkup: tg.RemoveKeyboard(),
		})

	case domain.StageAwaitingCategory:
		sess.Category = text
		sess.Stage = domain.StageAwaitingLocation
		h.sessions.Put(sess)

		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:      chatID,
			Text:        i18n.T(i18n.KeyLocationPrompt, sess.Language),
			ReplyMarkup: tg.LocationKeyboard(i18n.T(i18n.KeyBtnShareLocation, sess.Language)),
		})

	case domain.StageAwaitingLocation:
		sess.SearchMode = domain.SearchModeText
		sess.Query = text
		sess.Location = nil
		h.runSearch(ctx, b, sess)

	case domain.StageBrowsing:
		slog.Debug("text while browsing ignored", "chat_id", chatID)
	}
}

// HandleLocation consumes a shared location. It only means something while
// the dialogue is waiting for one.
func (h *Handler) HandleLocation(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Location == nil {
		return
	}
	chatID := update.Message.Chat.ID

	sess, ok := h.sessions.Get(chatID)
	if !ok || sess.Stage != domain.StageAwaitingLocation {
		return
	}

	sess.SearchMode = domain.SearchModeNearby
	sess.Query = ""
	sess.Location = &domain.Coordinates{
		Lat: update.Message.Location.Latitude,
		Lng: update.Message.Location.Longitude,
	}
	h.runSearch(ctx, b, sess)
}

// runSearch dispatches the search for the session's mode and target. Success
// enters browsing with the first page cached; any other outcome reads as
// "nothing found" and ends the dialogue.
func (h *Handler) runSearch(ctx context.Context, b *bot.Bot, sess *domain.Session) {
	locLabel := sess.Query
	if sess.SearchMode == domain.SearchModeNearby {
		locLabel = i18n.T(i18n.KeyYourLocation, sess.Language)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        fmt.Sprintf(i18n.T(i18n.KeySearchStarting, sess.Language), sess.Category, locLabel),
		ReplyMarkup: tg.RemoveKeyboard(),
	})

	result, err := h.dispatchSearch(ctx, sess)
	if err != nil {
		if !errors.Is(err, domain.ErrNoResults) {
			slog.Error("search failed", "error", err, "chat_id", sess.ChatID, "category", sess.Category)
		}
		h.sessions.Delete(sess.ChatID)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: sess.ChatID,
			Text:   i18n.T(i18n.KeyNothingFound, sess.Language),
		})
		return
	}

	sess.SetResults(result.Places, result.Total, result.NextPageToken, time.Now())
	sess.Stage = domain.StageBrowsing
	h.sendList(ctx, b, sess, false)
	h.sessions.Put(sess)
}

func (h *Handler) dispatchSearch(ctx context.Context, sess *domain.Session) (*places.SearchResult, error) {
	if sess.SearchMode == domain.SearchModeNearby {
		return h.places.NearbySearch(ctx, sess.Category, sess.Location.Lat, sess.Location.Lng, sess.Language, h.cfg.NearbyRadiusMeters)
	}
	return h.places.TextSearch(ctx, sess.Category, sess.Query, sess.Language)
}

// sendList renders the cached result page. When edit is set the existing
// list message is rewritten in place; otherwise a fresh message is sent and
// becomes the list message. Overlong list text is split; the keyboard rides
// on the final part.
func (h *Handler) sendList(ctx context.Context, b *bot.Bot, sess *domain.Session, edit bool) {
	text, keyboard := listView(sess)

	if edit && sess.ListMessageID != 0 {
		_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      sess.ChatID,
			MessageID:   sess.ListMessageID,
			Text:        text,
			ReplyMarkup: keyboard,
		})
		if err != nil {
			slog.Warn("edit list message", "error", err, "chat_id", sess.ChatID)
		}
		return
	}

	parts := tg.SplitMessage(text, config.MaxTelegramMessageLen)
	for i, part := range parts {
		params := &bot.SendMessageParams{
			ChatID: sess.ChatID,
			Text:   part,
		}
		if i == len(parts)-1 {
			params.ReplyMarkup = keyboard
		}
		msg, err := b.SendMessage(ctx, params)
		if err != nil {
			slog.Error("send list message", "error", err, "chat_id", sess.ChatID)
			return
		}
		if i == len(parts)-1 {
			sess.ListMessageID = msg.ID
		}
	}
}
