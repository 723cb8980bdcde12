package domain

// ExportRow is a single row in the flat itinerary export.
// It is a denormalized view: one row per activity, with itinerary fields
// repeated for every activity on that itinerary. Itineraries with no
// activities yield one row with empty activity fields.
type ExportRow struct {
	// Itinerary fields — repeated for every activity on the itinerary.
	ItineraryID string
	Destination string
	StartDate   string // "2006-01-02" formatted date
	EndDate     string // "2006-01-02" formatted date
	Budget      string // empty string when unspecified
	Notes       string

	// Activity fields — zero values when the itinerary has no activities.
	ActivityName string
	ActivityDate string // empty string when the activity has no date
}
