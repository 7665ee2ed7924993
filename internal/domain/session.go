package domain

import (
	"time"
)

// Language selects which localized strings a session receives.
type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"
)

// Stage is the session's position in the onboarding dialogue.
// Browsing is entered after a successful search and persists until reset.
type Stage int

const (
	StageAwaitingLanguage Stage = iota
	StageAwaitingCategory
	StageAwaitingLocation
	StageBrowsing
)

func (s Stage) String() string {
	switch s {
	case StageAwaitingLanguage:
		return "awaiting_language"
	case StageAwaitingCategory:
		return "awaiting_category"
	case StageAwaitingLocation:
		return "awaiting_location"
	case StageBrowsing:
		return "browsing"
	}
	return "unknown"
}

// SearchMode records which search operation produced the current results.
type SearchMode int

const (
	SearchModeText SearchMode = iota
	SearchModeNearby
)

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// MaxResults caps how many places of a page are kept for interactive addressing.
const MaxResults = 20

// Session holds everything the bot remembers about one chat. One update is
// processed at a time per chat, so fields are mutated without a lock.
type Session struct {
	ChatID   int64
	Stage    Stage
	Language Language
	Category string

	SearchMode SearchMode
	Query      string       // text mode: free-form place description
	Location   *Coordinates // nearby mode: shared coordinates

	// Cached result page. Results keeps at most MaxResults entries even when
	// the backend reports more; TotalFound is the backend-reported count.
	Results    []Place
	TotalFound int

	// NextPageToken is only valid for the search lineage that produced
	// Results. TokenIssuedAt anchors the mandated wait before it is usable.
	NextPageToken string
	TokenIssuedAt time.Time

	ListMessageID int // message hosting the list/details view, edited in place
	MapMessageID  int // outstanding map preview, 0 = none
}

// NewSession returns a fresh session at the language prompt.
func NewSession(chatID int64) *Session {
	return &Session{
		ChatID:   chatID,
		Stage:    StageAwaitingLanguage,
		Language: LanguageRU,
	}
}

// SetResults replaces the cached result page, truncating to MaxResults.
// An empty token clears pagination.
func (s *Session) SetResults(places []Place, total int, nextPageToken string, issuedAt time.Time) {
	if len(places) > MaxResults {
		places = places[:MaxResults]
	}
	s.Results = places
	s.TotalFound = total
	s.NextPageToken = nextPageToken
	if nextPageToken != "" {
		s.TokenIssuedAt = issuedAt
	} else {
		s.TokenIssuedAt = time.Time{}
	}
}

// ClearPageToken stops "find more" from being offered, leaving the cached
// list untouched.
func (s *Session) ClearPageToken() {
	s.NextPageToken = ""
	s.TokenIssuedAt = time.Time{}
}

// FindPlace looks up a cached place by its backend ID.
func (s *Session) FindPlace(id string) (Place, bool) {
	for _, p := range s.Results {
		if p.ID == id {
			return p, true
		}
	}
	return Place{}, false
}

// TakeMapMessage hands out the outstanding map-preview message ID at most
// once: the caller that receives a non-zero ID owns its deletion.
func (s *Session) TakeMapMessage() int {
	id := s.MapMessageID
	s.MapMessageID = 0
	return id
}
