package catalog

import (
	"slices"
	"strings"
)

// TripSuggestions recommends modules that usually accompany the selection.
func TripSuggestions(selected []string) []string {
	var out []string
	has := func(k string) bool { return slices.Contains(selected, k) }

	if has("beach") && !has("sports") {
		out = append(out, "Consider adding Sports & Recreation for beach activities")
	}
	if has("camping") && !has("winter") {
		out = append(out, "Check if you need Winter Sports gear for cold weather camping")
	}
	if has("business") && !has("electronics") {
		out = append(out, "Electronics module recommended for business trips")
	}
	if has("wedding") && !has("electronics") {
		out = append(out, "Don't forget camera/electronics for capturing memories")
	}
	if len(selected) > 0 && !has("essentials") {
		out = append(out, "Always include Essentials module for important documents")
	}
	return out
}

// DurationRecommendations gives advice based on trip length.
func DurationRecommendations(days int, selected []string) []string {
	var out []string
	if days > 7 && slices.Contains(selected, "clothing") {
		out = append(out, "For trips over a week, consider packing layers and versatile pieces")
	}
	if days > 14 {
		out = append(out, "Long trip: Pack laundry essentials and comfortable shoes")
	}
	if days <= 3 && len(selected) > 5 {
		out = append(out, "Short trip: You might be overpacking. Focus on essentials")
	}
	return out
}

// WeatherSuggestions matches simple keywords in a destination name.
func WeatherSuggestions(destination string) []string {
	var out []string
	d := strings.ToLower(destination)
	if strings.Contains(d, "beach") || strings.Contains(d, "tropical") {
		out = append(out,
			"Pack sun protection: sunscreen, hat, sunglasses",
			"Light, breathable clothing recommended",
		)
	}
	if strings.Contains(d, "mountain") || strings.Contains(d, "ski") {
		out = append(out,
			"Layer clothing for changing mountain weather",
			"Don't forget warm accessories: gloves, hat, thermal wear",
		)
	}
	return out
}

// AllSuggestions combines every suggestion source for a trip. The trip name
// stands in for the destination.
func AllSuggestions(tripName string, days int, selected []string) []string {
	out := TripSuggestions(selected)
	out = append(out, DurationRecommendations(days, selected)...)
	out = append(out, WeatherSuggestions(tripName)...)
	return out
}
