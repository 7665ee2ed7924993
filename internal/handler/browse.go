package handler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/placefinder/internal/config"
	"github.com/set-night/placefinder/internal/domain"
	"github.com/set-night/placefinder/internal/i18n"
	"github.com/set-night/placefinder/internal/render"
)

func listView(sess *domain.Session) (string, *models.InlineKeyboardMarkup) {
	text := render.ListText(sess.Results, sess.TotalFound, sess.Language)
	keyboard := render.ListKeyboard(sess.Results, sess.NextPageToken != "", sess.Language)
	return text, keyboard
}

// callbackChat extracts the chat and message the pressed button lives on.
func callbackChat(update *models.Update) (chatID int64, messageID int, ok bool) {
	if update.CallbackQuery == nil || update.CallbackQuery.Message.Message == nil {
		return 0, 0, false
	}
	msg := update.CallbackQuery.Message.Message
	return msg.Chat.ID, msg.ID, true
}

func (h *Handler) answerCallback(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
		Text:            text,
	})
}

// handleDetails shows the details view for one cached place. The place must
// still be addressable in the current session; a stale button press after a
// reset gets an alert instead.
func (h *Handler) handleDetails(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackChat(update)
	if !ok {
		return
	}
	placeID := strings.TrimPrefix(update.CallbackQuery.Data, render.CallbackDetailsPrefix)

	sess, found := h.sessions.Get(chatID)
	if !found || sess.Stage != domain.StageBrowsing {
		lang := domain.LanguageRU
		if found {
			lang = sess.Language
		}
		h.answerCallback(ctx, b, update, i18n.T(i18n.KeyDetailsUnavailable, lang))
		return
	}
	if _, known := sess.FindPlace(placeID); !known {
		h.answerCallback(ctx, b, update, i18n.T(i18n.KeyDetailsUnavailable, sess.Language))
		return
	}
	h.answerCallback(ctx, b, update, "")

	details, err := h.places.Details(ctx, placeID, sess.Language)
	if err != nil {
		slog.Error("place details", "error", err, "chat_id", chatID, "place_id", placeID)
		// List data stays cached so "back to list" still works
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   messageID,
			Text:        i18n.T(i18n.KeyDetailsError, sess.Language),
			ReplyMarkup: render.BackKeyboard(sess.Language),
		})
		return
	}

	h.deleteMapMessage(ctx, b, sess)

	_, err = b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        render.DetailsText(details),
		ParseMode:   models.ParseModeMarkdownV1,
		ReplyMarkup: render.DetailsKeyboard(details, sess.Language),
	})
	if err != nil {
		slog.Warn("edit details message", "error", err, "chat_id", chatID)
	}
	sess.ListMessageID = messageID

	if details.Location != nil {
		msg, err := b.SendLocation(ctx, &bot.SendLocationParams{
			ChatID:    chatID,
			Latitude:  details.Location.Lat,
			Longitude: details.Location.Lng,
		})
		if err != nil {
			slog.Warn("send map preview", "error", err, "chat_id", chatID)
		} else {
			sess.MapMessageID = msg.ID
		}
	}

	h.sessions.Put(sess)
}

// handleBackToList restores the cached list view, releasing the outstanding
// map preview first. Pressing it again with no map outstanding is a no-op on
// the cleanup side.
func (h *Handler) handleBackToList(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackChat(update)
	if !ok {
		return
	}
	h.answerCallback(ctx, b, update, "")

	sess, found := h.sessions.Get(chatID)
	if !found || len(sess.Results) == 0 {
		lang := domain.LanguageRU
		if found {
			lang = sess.Language
		}
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:    chatID,
			MessageID: messageID,
			Text:      i18n.T(i18n.KeyResultsLost, lang),
		})
		return
	}

	h.deleteMapMessage(ctx, b, sess)

	text, keyboard := listView(sess)
	_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      chatID,
		MessageID:   messageID,
		Text:        text,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		slog.Warn("edit list message", "error", err, "chat_id", chatID)
	}
	sess.ListMessageID = messageID
	h.sessions.Put(sess)
}

// handleFindMore fetches the next result page. The backend invalidates page
// tokens for a short window after issuing them, so the remaining wait is
// slept off before the request goes out.
func (h *Handler) handleFindMore(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, _, ok := callbackChat(update)
	if !ok {
		return
	}

	sess, found := h.sessions.Get(chatID)
	if !found {
		h.answerCallback(ctx, b, update, i18n.T(i18n.KeyResultsLost, domain.LanguageRU))
		return
	}
	if sess.NextPageToken == "" {
		// Transient notice only; the cached list is not re-rendered
		h.answerCallback(ctx, b, update, i18n.T(i18n.KeyNoMoreResults, sess.Language))
		return
	}

	if remaining := config.NextPageDelay - time.Since(sess.TokenIssuedAt); remaining > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(remaining):
		}
	}

	result, err := h.places.NextPage(ctx, sess.NextPageToken, sess.SearchMode)
	if err != nil {
		slog.Warn("next page", "error", err, "chat_id", chatID)
		sess.ClearPageToken()
		h.sessions.Put(sess)
		h.answerCallback(ctx, b, update, i18n.T(i18n.KeyFindMoreFailed, sess.Language))
		// Keyboard re-rendered so "find more" stops being offered
		h.sendList(ctx, b, sess, true)
		return
	}

	h.answerCallback(ctx, b, update, "")
	sess.SetResults(result.Places, result.Total, result.NextPageToken, time.Now())
	h.sendList(ctx, b, sess, true)
	h.sessions.Put(sess)
}

// handleNewSearch drops the session entirely; the user starts over with /start.
func (h *Handler) handleNewSearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, messageID, ok := callbackChat(update)
	if !ok {
		return
	}
	h.answerCallback(ctx, b, update, "")

	lang := domain.LanguageRU
	if sess, found := h.sessions.Get(chatID); found {
		lang = sess.Language
		h.deleteMapMessage(ctx, b, sess)
	}
	h.sessions.Delete(chatID)

	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      i18n.T(i18n.KeyNewSearchHint, lang),
	})
}

// deleteMapMessage releases the session's outstanding map preview, if any.
// Best effort: failures are logged, never surfaced.
func (h *Handler) deleteMapMessage(ctx context.Context, b *bot.Bot, sess *domain.Session) {
	if mid := sess.TakeMapMessage(); mid != 0 {
		if _, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{ChatID: sess.ChatID, MessageID: mid}); err != nil {
			slog.Warn("delete map message", "error", err, "chat_id", sess.ChatID, "message_id", mid)
		}
	}
}
