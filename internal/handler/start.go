package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/set-night/placefinder/internal/domain"
	"github.com/set-night/placefinder/internal/i18n"
	tg "github.com/set-night/placefinder/internal/telegram"
)

// handleStart wipes any prior session and begins the dialogue at the
// language prompt.
func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	h.cleanupMapMessage(ctx, b, chatID)
	h.sessions.Reset(chatID)

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        i18n.T(i18n.KeyLanguagePrompt, domain.LanguageRU),
		ReplyMarkup: tg.ReplyKeyboard(i18n.LanguageChoices),
	})
	if err != nil {
		slog.Error("send language prompt", "error", err, "chat_id", chatID)
	}
}

// handleCancel aborts the dialogue at any stage. The cancellation notice uses
// the session language when one was already chosen.
func (h *Handler) handleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	lang := domain.LanguageRU
	if sess, ok := h.sessions.Get(chatID); ok {
		lang = sess.Language
	}

	h.cleanupMapMessage(ctx, b, chatID)
	h.sessions.Delete(chatID)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        i18n.T(i18n.KeyCancelled, lang),
		ReplyMarkup: tg.RemoveKeyboard(),
	})
}

// cleanupMapMessage releases the outstanding map preview, if any, before the
// session is reset.
func (h *Handler) cleanupMapMessage(ctx context.Context, b *bot.Bot, chatID int64) {
	if sess, ok := h.sessions.Get(chatID); ok {
		h.deleteMapMessage(ctx, b, sess)
	}
}
