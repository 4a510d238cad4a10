package platform

import (
	"github.com/fwojciec/pinmark"
)

var _ pinmark.Strategy = (*Travel)(nil)

// Travel extracts stays, hotels and attractions of travel sites.
type Travel struct {
	family
}

// NewTravel creates a new Travel strategy.
func NewTravel() *Travel {
	return &Travel{family{
		name:  "travel",
		label: "Travel",
		icon:  "✈️",
		sites: []site{
			{match: "airbnb.", name: "Airbnb", tag: "airbnb", icon: "🏠"},
			{match: "booking.com", name: "Booking.com", tag: "booking", icon: "🏨"},
			{match: "tripadvisor.", name: "Tripadvisor", tag: "tripadvisor", icon: "🦉"},
			{match: "expedia.", name: "Expedia", tag: "expedia", icon: "✈️"},
			{match: "hotels.com", name: "Hotels.com", tag: "hotels", icon: "🏨"},
			{match: "vrbo.com", name: "Vrbo", tag: "vrbo", icon: "🏡"},
		},
	}}
}

// Extract returns the listing with its locality as a tag.
func (s *Travel) Extract(page pinmark.PageContext) *pinmark.ExtractionResult {
	d := s.baseline(page)
	d.Title = trimSuffixes(d.Title, " - Airbnb", " | Airbnb", " - Tripadvisor", " | Expedia", " | Hotels.com", " | Vrbo")

	place := jsonLDOfType(JSONLDEntries(jsonLDBlocks(page)),
		"LodgingBusiness", "Hotel", "VacationRental", "Accommodation", "Place", "TouristAttraction", "Restaurant")
	d.Title = firstNonEmpty(d.Title, jsonText(place["name"]))
	d.Description = firstNonEmpty(d.Description, jsonText(place["description"]))
	d.Thumbnail = firstNonEmpty(d.Thumbnail, jsonImage(place["image"]))

	locality := firstNonEmpty(
		jsonText(jsonPath(place, "address", "addressLocality")),
		page.Meta("og:locality"),
		page.Meta("airbedandbreakfast:locality"),
	)
	d.Tags = append(d.Tags, "travel")
	if tag := TagOf(locality); tag != "" {
		d.Tags = append(d.Tags, tag)
	}
	return pinmark.NewExtractionResult(d)
}
