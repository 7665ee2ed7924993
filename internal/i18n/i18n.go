// Package i18n holds every user-visible string in both supported languages.
// Handlers never branch on language themselves; they ask T for a keyed string.
package i18n

import (
	"strings"

	"github.com/set-night/placefinder/internal/domain"
)

// Key identifies one localized message.
type Key string

const (
	KeyLanguagePrompt     Key = "language_prompt"
	KeyCategoryPrompt     Key = "category_prompt"
	KeyLocationPrompt     Key = "location_prompt"
	KeySearchStarting     Key = "search_starting" // args: category, location
	KeyYourLocation       Key = "your_location"
	KeyNothingFound       Key = "nothing_found"
	KeyFoundSummary       Key = "found_summary" // args: count
	KeyNoPhone            Key = "no_phone"
	KeyCancelled          Key = "cancelled"
	KeyNewSearchHint      Key = "new_search_hint"
	KeyDetailsUnavailable Key = "details_unavailable"
	KeyDetailsError       Key = "details_error"
	KeyResultsLost        Key = "results_lost"
	KeyNoMoreResults      Key = "no_more_results"
	KeyFindMoreFailed     Key = "find_more_failed"
	KeyBtnBackToList      Key = "btn_back_to_list"
	KeyBtnFindMore        Key = "btn_find_more"
	KeyBtnNewSearch       Key = "btn_new_search"
	KeyBtnWebsite         Key = "btn_website"
	KeyBtnOpenMap         Key = "btn_open_map"
	KeyBtnShareLocation   Key = "btn_share_location"
)

// The language prompt is shown before a language is chosen, so it carries
// both languages in one string.
var messages = map[Key]map[domain.Language]string{
	KeyLanguagePrompt: {
		domain.LanguageRU: "🌍 Please choose a language / Пожалуйста, выберите язык:",
		domain.LanguageEN: "🌍 Please choose a language / Пожалуйста, выберите язык:",
	},
	KeyCategoryPrompt: {
		domain.LanguageRU: "🔍 Отлично! Введите категорию для поиска (например: аптека, кафе, автомойка):",
		domain.LanguageEN: "🔍 Great! Enter a category to search for (e.g. pharmacy, car wash, cafe):",
	},
	KeyLocationPrompt: {
		domain.LanguageRU: "📍 Введите название города или отправьте геолокацию:",
		domain.LanguageEN: "📍 Enter a city name or share your location:",
	},
	KeySearchStarting: {
		domain.LanguageRU: "🔄 Начинаю поиск...\n\nКатегория: %s\nМестоположение: %s",
		domain.LanguageEN: "🔄 Starting search...\n\nCategory: %s\nLocation: %s",
	},
	KeyYourLocation: {
		domain.LanguageRU: "ваша геолокация",
		domain.LanguageEN: "your location",
	},
	KeyNothingFound: {
		domain.LanguageRU: "❌ Ничего не найдено или ошибка API.",
		domain.LanguageEN: "❌ Nothing found or API error.",
	},
	KeyFoundSummary: {
		domain.LanguageRU: "✅ Найдено организаций: %d",
		domain.LanguageEN: "✅ Found places: %d",
	},
	KeyNoPhone: {
		domain.LanguageRU: "📞 Телефон не указан",
		domain.LanguageEN: "📞 No phone listed",
	},
	KeyCancelled: {
		domain.LanguageRU: "❌ Операция отменена. Для нового поиска используйте /start",
		domain.LanguageEN: "❌ Operation cancelled. To start again, use /start",
	},
	KeyNewSearchHint: {
		domain.LanguageRU: "Хотите выполнить новый поиск? Отправьте /start",
		domain.LanguageEN: "Want to start a new search? Send /start",
	},
	KeyDetailsUnavailable: {
		domain.LanguageRU: "⚠️ Данные устарели. Отправьте /start для нового поиска.",
		domain.LanguageEN: "⚠️ Data no longer available. Send /start to search again.",
	},
	KeyDetailsError: {
		domain.LanguageRU: "❌ Не удалось получить информацию о месте.",
		domain.LanguageEN: "❌ Error getting place details.",
	},
	KeyResultsLost: {
		domain.LanguageRU: "⚠️ Результаты утеряны. Отправьте /start для нового поиска.",
		domain.LanguageEN: "⚠️ Results lost. Send /start to search again.",
	},
	KeyNoMoreResults: {
		domain.LanguageRU: "Больше результатов нет",
		domain.LanguageEN: "No more results",
	},
	KeyFindMoreFailed: {
		domain.LanguageRU: "❌ Не удалось загрузить ещё результаты",
		domain.LanguageEN: "❌ Could not load more results",
	},
	KeyBtnBackToList: {
		domain.LanguageRU: "⬅️ Назад к списку",
		domain.LanguageEN: "⬅️ Back to list",
	},
	KeyBtnFindMore: {
		domain.LanguageRU: "🔎 Найти ещё",
		domain.LanguageEN: "🔎 Find more",
	},
	KeyBtnNewSearch: {
		domain.LanguageRU: "🔄 Новый поиск",
		domain.LanguageEN: "🔄 New search",
	},
	KeyBtnWebsite: {
		domain.LanguageRU: "🌐 Сайт",
		domain.LanguageEN: "🌐 Website",
	},
	KeyBtnOpenMap: {
		domain.LanguageRU: "🗺 Открыть карту",
		domain.LanguageEN: "🗺 Open map",
	},
	KeyBtnShareLocation: {
		domain.LanguageRU: "📍 Отправить геолокацию",
		domain.LanguageEN: "📍 Share location",
	},
}

// T returns the localized string for key. Unknown languages fall back to
// English, unknown keys to the key itself so a miss is visible in chat logs.
func T(key Key, lang domain.Language) string {
	byLang, ok := messages[key]
	if !ok {
		return string(key)
	}
	if s, ok := byLang[lang]; ok {
		return s
	}
	return byLang[domain.LanguageEN]
}

// russianMarker matches the button label "Русский 🇷🇺" the same way the
// language classifier always has: any text mentioning "Рус" selects Russian.
const russianMarker = "Рус"

// DetectLanguage classifies free-text language choice.
func DetectLanguage(text string) domain.Language {
	if strings.Contains(text, russianMarker) {
		return domain.LanguageRU
	}
	return domain.LanguageEN
}

// LanguageChoices are the reply-keyboard labels offered at the language prompt.
var LanguageChoices = []string{"Русский 🇷🇺", "English 🇬🇧"}
