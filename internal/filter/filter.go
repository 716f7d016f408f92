package filter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/ranking"
	"github.com/dharmasatrya/flightbooking/internal/timefmt"
)

// Apply filters offers by price range, first-segment carrier, stop count and
// the optional time windows, then stable-sorts by the chosen key. The input
// slice is never modified; an empty result is returned as an empty slice.
func Apply(offers []models.FlightOffer, filters models.ResultFilters) []models.FlightOffer {
	filtered := applyFilters(offers, filters)

	if filters.SortBy == models.SortByBestValue {
		filtered = ranking.CalculateScores(filtered)
	}

	return applySort(filtered, filters.SortBy, filters.SortOrder)
}

func applyFilters(offers []models.FlightOffer, filters models.ResultFilters) []models.FlightOffer {
	result := make([]models.FlightOffer, 0, len(offers))

	for _, o := range offers {
		if matchesFilters(o, filters) {
			result = append(result, o)
		}
	}

	return result
}

func matchesFilters(o models.FlightOffer, filters models.ResultFilters) bool {
	if len(o.Segments) == 0 {
		return false
	}

	if filters.PriceMin != nil && o.Price.Amount < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && o.Price.Amount > *filters.PriceMax {
		return false
	}

	if len(filters.Carriers) > 0 {
		found := false
		for _, carrier := range filters.Carriers {
			if strings.EqualFold(o.Carrier(), carrier) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch filters.Stops {
	case models.StopsDirect:
		if len(o.Segments) != 1 {
			return false
		}
	case models.StopsOneStop:
		if len(o.Segments) != 2 {
			return false
		}
	}

	depTime := o.FirstSegment().DepartureTime.Hour()*60 + o.FirstSegment().DepartureTime.Minute()
	if filters.DepartureTimeMin != nil {
		if minTime, err := timefmt.MinuteOfDay(*filters.DepartureTimeMin); err == nil && depTime < minTime {
			return false
		}
	}
	if filters.DepartureTimeMax != nil {
		if maxTime, err := timefmt.MinuteOfDay(*filters.DepartureTimeMax); err == nil && depTime > maxTime {
			return false
		}
	}

	if filters.MaxDuration != nil && o.TotalDuration().TotalMinutes > *filters.MaxDuration {
		return false
	}

	return true
}

func applySort(offers []models.FlightOffer, sortBy models.SortKey, sortOrder string) []models.FlightOffer {
	if len(offers) == 0 {
		return offers
	}

	var compare func(a, b models.FlightOffer) int
	switch sortBy {
	case models.SortByDuration:
		compare = func(a, b models.FlightOffer) int {
			return cmp.Compare(a.FirstSegment().Duration.TotalMinutes, b.FirstSegment().Duration.TotalMinutes)
		}

	case models.SortByDeparture:
		compare = func(a, b models.FlightOffer) int {
			return a.FirstSegment().DepartureTime.Compare(b.FirstSegment().DepartureTime)
		}

	case models.SortByBestValue:
		compare = func(a, b models.FlightOffer) int {
			return cmp.Compare(a.BestValueScore, b.BestValueScore)
		}

	default:
		compare = func(a, b models.FlightOffer) int {
			return cmp.Compare(a.Price.Amount, b.Price.Amount)
		}
	}

	if strings.EqualFold(sortOrder, "desc") {
		asc := compare
		compare = func(a, b models.FlightOffer) int {
			return asc(b, a)
		}
	}

	slices.SortStableFunc(offers, compare)

	return offers
}

// Carriers lists the distinct first-segment carrier codes in order of first
// appearance.
func Carriers(offers []models.FlightOffer) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, o := range offers {
		if len(o.Segments) == 0 {
			continue
		}
		code := o.Carrier()
		if !seen[code] {
			seen[code] = true
			result = append(result, code)
		}
	}
	return result
}
