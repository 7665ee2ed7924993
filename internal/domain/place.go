package domain

// Place is one search result. Everything except ID and Name is optional and
// zero-valued when the backend omitted it.
type Place struct {
	ID       string
	Name     string
	Rating   float64
	Phone    string
	Address  string
	Location *Coordinates
}

// PlaceDetails is the enriched view of a place fetched on demand.
type PlaceDetails struct {
	ID         string
	Name       string
	Rating     float64
	Phone      string
	Address    string
	WebsiteURL string
	MapURL     string
	Location   *Coordinates
}
