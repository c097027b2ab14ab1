package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/xiaot623/gogo/concierge/internal/adapter/places"
	"github.com/xiaot623/gogo/concierge/internal/domain"
)

// RestaurantInfo returns live place details merged over the fallback
// record. It never fails: any provider error yields the full fallback.
func (s *Service) RestaurantInfo(ctx context.Context) domain.RestaurantInfo {
	fallback := domain.FallbackRestaurantInfo()

	details, err := s.placesClient.GetDetails(ctx, s.config.PlaceID)
	if err != nil {
		slog.WarnContext(ctx, "serving fallback restaurant info",
			"place_id", s.config.PlaceID,
			"error", &domain.ProviderError{Provider: "places", Err: err})
		return fallback
	}
	return mergeRestaurantInfo(details, fallback)
}

// mergeRestaurantInfo takes each attribute from details when present and
// from fallback otherwise.
func mergeRestaurantInfo(details *places.PlaceDetails, fallback domain.RestaurantInfo) domain.RestaurantInfo {
	info := domain.RestaurantInfo{
		Name:    orString(details.Name, fallback.Name),
		Address: orString(details.FormattedAddress, fallback.Address),
		Phone:   orString(details.FormattedPhoneNumber, fallback.Phone),
		Website: orString(details.Website, fallback.Website),
		Rating:  fallback.Rating,
		Reviews: fallback.Reviews,
		Hours:   fallback.Hours,
		IsOpen:  fallback.IsOpen,
	}

	if details.Rating != nil && *details.Rating != 0 {
		info.Rating = *details.Rating
	}
	if details.UserRatingsTotal != nil && *details.UserRatingsTotal != 0 {
		info.Reviews = *details.UserRatingsTotal
	}
	if details.OpeningHours != nil {
		if hours := parseWeekdayText(details.OpeningHours.WeekdayText); len(hours) > 0 {
			info.Hours = hours
		}
	}
	if details.CurrentOpeningHours != nil && details.CurrentOpeningHours.OpenNow != nil {
		info.IsOpen = *details.CurrentOpeningHours.OpenNow
	}

	info.CurrentStatus = domain.StatusClosed
	if info.IsOpen {
		info.CurrentStatus = domain.StatusOpen
	}
	return info
}

// parseWeekdayText turns entries like "Monday: 11:00 AM – 10:00 PM" into a
// weekday to hours map. Entries without a ": " separator are skipped.
func parseWeekdayText(lines []string) map[string]string {
	hours := make(map[string]string, len(lines))
	for _, line := range lines {
		day, rng, ok := strings.Cut(line, ": ")
		if !ok || strings.TrimSpace(day) == "" {
			continue
		}
		hours[strings.TrimSpace(day)] = strings.TrimSpace(rng)
	}
	return hours
}

func orString(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
