package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/set-night/placefinder/internal/domain"
)

func makePlaces(n int) []domain.Place {
	places := make([]domain.Place, n)
	for i := range places {
		places[i] = domain.Place{
			ID:   fmt.Sprintf("id%d", i),
			Name: fmt.Sprintf("Place %d", i),
		}
	}
	return places
}

func TestListTextUsesBackendTotal(t *testing.T) {
	text := ListText(makePlaces(2), 57, domain.LanguageEN)

	require.Contains(t, text, "Found places: 57")
	require.Contains(t, text, "Place 0")
	require.Contains(t, text, "Place 1")
}

func TestListTextPhoneFallback(t *testing.T) {
	places := []domain.Place{
		{ID: "a", Name: "With phone", Phone: "+7 777 123 45 67"},
		{ID: "b", Name: "Without phone"},
	}

	ru := ListText(places, 2, domain.LanguageRU)
	require.Contains(t, ru, "📞 +7 777 123 45 67")
	require.Contains(t, ru, "Телефон не указан")

	en := ListText(places, 2, domain.LanguageEN)
	require.Contains(t, en, "No phone listed")
}

func TestListTextRatingOnlyWhenPresent(t *testing.T) {
	places := []domain.Place{
		{ID: "a", Name: "Rated", Rating: 4.6},
		{ID: "b", Name: "Unrated"},
	}

	text := ListText(places, 2, domain.LanguageEN)
	require.Contains(t, text, "⭐ 4.6")
	require.Equal(t, 1, strings.Count(text, "⭐"))
}

func TestListKeyboardTwoResultsNoToken(t *testing.T) {
	kb := ListKeyboard(makePlaces(2), false, domain.LanguageEN)

	// one row per place plus the navigation row
	require.Len(t, kb.InlineKeyboard, 3)
	require.Equal(t, "1. Place 0", kb.InlineKeyboard[0][0].Text)
	require.Equal(t, "details_id0", kb.InlineKeyboard[0][0].CallbackData)

	nav := kb.InlineKeyboard[2]
	require.Len(t, nav, 1, "no find-more without a token")
	require.Equal(t, CallbackNewSearch, nav[0].CallbackData)
}

func TestListKeyboardWithToken(t *testing.T) {
	kb := ListKeyboard(makePlaces(2), true, domain.LanguageEN)

	nav := kb.InlineKeyboard[len(kb.InlineKeyboard)-1]
	require.Len(t, nav, 2)
	require.Equal(t, CallbackFindMore, nav[0].CallbackData)
	require.Equal(t, CallbackNewSearch, nav[1].CallbackData)
}

func TestListKeyboardCapsButtons(t *testing.T) {
	kb := ListKeyboard(makePlaces(30), false, domain.LanguageEN)

	require.Len(t, kb.InlineKeyboard, domain.MaxResults+1, "20 place rows plus navigation")
}

func TestDetailsTextOmitsAbsentFields(t *testing.T) {
	d := &domain.PlaceDetails{Name: "City Pharmacy"}

	text := DetailsText(d)

	require.Equal(t, "📍 City Pharmacy", text)
	require.NotContains(t, text, "📞", "details view has no phone placeholder")
	require.NotContains(t, text, "⭐")
	require.NotContains(t, text, "🏠")
}

func TestDetailsTextFullPayload(t *testing.T) {
	d := &domain.PlaceDetails{
		Name:    "City Pharmacy",
		Rating:  4.2,
		Phone:   "+7 727 000 00 00",
		Address: "Abay Ave 10",
	}

	text := DetailsText(d)

	require.Contains(t, text, "📍 City Pharmacy")
	require.Contains(t, text, "⭐ 4.2")
	require.Contains(t, text, "📞 `+7 727 000 00 00`", "phone is inline-coded")
	require.Contains(t, text, "🏠 Abay Ave 10")
}

func TestDetailsKeyboardAlwaysHasBack(t *testing.T) {
	kb := DetailsKeyboard(&domain.PlaceDetails{Name: "x"}, domain.LanguageEN)

	require.Len(t, kb.InlineKeyboard, 1)
	require.Equal(t, CallbackBackToList, kb.InlineKeyboard[0][0].CallbackData)
}

func TestDetailsKeyboardLinks(t *testing.T) {
	d := &domain.PlaceDetails{
		Name:       "x",
		WebsiteURL: "https://example.com",
		MapURL:     "https://maps.google.com/?cid=1",
	}

	kb := DetailsKeyboard(d, domain.LanguageEN)

	require.Len(t, kb.InlineKeyboard, 2)
	links := kb.InlineKeyboard[0]
	require.Len(t, links, 2)
	require.Equal(t, "https://example.com", links[0].URL)
	require.Equal(t, "https://maps.google.com/?cid=1", links[1].URL)
	require.Equal(t, CallbackBackToList, kb.InlineKeyboard[1][0].CallbackData)
}
