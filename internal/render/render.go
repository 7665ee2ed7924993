// Package render builds message texts and keyboards from session data.
// Nothing here talks to Telegram or mutates state.
package render

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"

	"github.com/set-night/placefinder/internal/domain"
	"github.com/set-night/placefinder/internal/i18n"
	tg "github.com/set-night/placefinder/internal/telegram"
)

// Callback payloads understood by the results browser.
const (
	CallbackDetailsPrefix = "details_"
	CallbackBackToList    = "back_to_list"
	CallbackFindMore      = "find_more"
	CallbackNewSearch     = "new_search"
)

// ListText renders the result summary plus one block per place: name, rating
// when present, and a phone line with an explicit fallback when absent.
func ListText(places []domain.Place, total int, lang domain.Language) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(i18n.T(i18n.KeyFoundSummary, lang), total))
	sb.WriteString("\n\n")

	for _, p := range places {
		sb.WriteString("📍 " + p.Name + "\n")
		if p.Rating > 0 {
			sb.WriteString(fmt.Sprintf("⭐ %.1f\n", p.Rating))
		}
		if p.Phone != "" {
			sb.WriteString("📞 " + p.Phone + "\n")
		} else {
			sb.WriteString(i18n.T(i18n.KeyNoPhone, lang) + "\n")
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// ListKeyboard builds one numbered button per place (the caller has already
// capped the slice at the addressable maximum) and a trailing navigation row:
// "find more" only when a page token exists, "new search" always.
func ListKeyboard(places []domain.Place, hasMore bool, lang domain.Language) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton

	for i, p := range places {
		if i >= domain.MaxResults {
			break
		}
		rows = append(rows, tg.ButtonRow(
			tg.InlineButton(fmt.Sprintf("%d. %s", i+1, p.Name), CallbackDetailsPrefix+p.ID),
		))
	}

	var navRow []models.InlineKeyboardButton
	if hasMore {
		navRow = append(navRow, tg.InlineButton(i18n.T(i18n.KeyBtnFindMore, lang), CallbackFindMore))
	}
	navRow = append(navRow, tg.InlineButton(i18n.T(i18n.KeyBtnNewSearch, lang), CallbackNewSearch))
	rows = append(rows, navRow)

	return tg.InlineKeyboard(rows...)
}

// DetailsText renders the details view. Absent fields are omitted entirely;
// unlike the list there is no phone placeholder here. The text is sent with
// Markdown parse mode so the phone renders inline-coded.
func DetailsText(d *domain.PlaceDetails) string {
	var sb strings.Builder
	sb.WriteString("📍 " + d.Name)
	if d.Rating > 0 {
		sb.WriteString(fmt.Sprintf("\n⭐ %.1f", d.Rating))
	}
	if d.Phone != "" {
		sb.WriteString("\n📞 `" + d.Phone + "`")
	}
	if d.Address != "" {
		sb.WriteString("\n🏠 " + d.Address)
	}
	return sb.String()
}

// DetailsKeyboard links out to the website and map when known and always
// offers the way back to the list.
func DetailsKeyboard(d *domain.PlaceDetails, lang domain.Language) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton

	var linkRow []models.InlineKeyboardButton
	if d.WebsiteURL != "" {
		linkRow = append(linkRow, tg.URLButton(i18n.T(i18n.KeyBtnWebsite, lang), d.WebsiteURL))
	}
	if d.MapURL != "" {
		linkRow = append(linkRow, tg.URLButton(i18n.T(i18n.KeyBtnOpenMap, lang), d.MapURL))
	}
	if len(linkRow) > 0 {
		rows = append(rows, linkRow)
	}

	rows = append(rows, tg.ButtonRow(
		tg.InlineButton(i18n.T(i18n.KeyBtnBackToList, lang), CallbackBackToList),
	))

	return tg.InlineKeyboard(rows...)
}

// BackKeyboard is shown with error texts that replace the details view so
// the cached list stays reachable.
func BackKeyboard(lang domain.Language) *models.InlineKeyboardMarkup {
	return tg.InlineKeyboard(tg.ButtonRow(
		tg.InlineButton(i18n.T(i18n.KeyBtnBackToList, lang), CallbackBackToList),
	))
}
