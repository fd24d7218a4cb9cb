package seed

import (
	"fmt"
	"math"
	"sort"
	"time"

	"yieldboard/internal/domain/entity"
	"yieldboard/pkg/utils"
)

const (
	scheduleMonths      = 12
	bookingWindowMonths = 6
	fillWindowDays      = 180
	scheduleDaySpan     = 28
)

// DeparturesPerMonth is the departure frequency for a season type
func DeparturesPerMonth(seasonType entity.SeasonType) int {
	switch seasonType {
	case entity.SeasonHigh:
		return 4
	case entity.SeasonShoulder:
		return 3
	default:
		return 2
	}
}

// DeriveStatus maps occupancy and lead time to a departure status
func DeriveStatus(occupancy float64, daysUntil int) entity.DepartureStatus {
	switch {
	case occupancy >= 95:
		return entity.StatusSoldOut
	case occupancy >= 80:
		return entity.StatusNearlyFull
	case occupancy < 20 && daysUntil < 45:
		return entity.StatusCancelled
	default:
		return entity.StatusOpen
	}
}

// ClassifyPace compares velocity against filling capacity linearly over 180 days.
// The slow branch is tested first, so stalled is never produced.
func ClassifyPace(velocity float64, capacity int) entity.BookingPace {
	historical := float64(capacity) / fillWindowDays
	switch {
	case velocity > historical*1.2:
		return entity.PaceFast
	case velocity < historical*0.5:
		return entity.PaceSlow
	case velocity < historical*0.2:
		return entity.PaceStalled
	default:
		return entity.PaceNormal
	}
}

// ProximityBoost scales a booking rate up as departure approaches
func ProximityBoost(rate float64, daysUntil int) float64 {
	switch {
	case daysUntil < 30:
		return math.Min(rate*1.4, 0.98)
	case daysUntil < 60:
		return math.Min(rate*1.2, 0.95)
	case daysUntil < 90:
		return math.Min(rate*1.1, 0.90)
	default:
		return rate
	}
}

func (g *Generator) baseBookingRate(seasonType entity.SeasonType) float64 {
	switch seasonType {
	case entity.SeasonHigh:
		return g.uniform(0.70, 0.95)
	case entity.SeasonShoulder:
		return g.uniform(0.50, 0.80)
	default:
		return g.uniform(0.30, 0.60)
	}
}

func (g *Generator) departurePriceMultiplier(pace entity.BookingPace, seasonType entity.SeasonType) float64 {
	multiplier := 1.0
	switch pace {
	case entity.PaceFast:
		multiplier = g.uniform(1.05, 1.15)
	case entity.PaceSlow:
		multiplier = g.uniform(0.90, 1.00)
	case entity.PaceStalled:
		multiplier = g.uniform(0.75, 0.90)
	}

	switch seasonType {
	case entity.SeasonHigh:
		multiplier *= 1.10
	case entity.SeasonLow:
		multiplier *= 0.85
	}
	return multiplier
}

// GenerateDepartures schedules future departures for the next 12 months,
// sorted by departure date ascending.
func (g *Generator) GenerateDepartures(products []entity.Product, seasons []entity.Season) []entity.Departure {
	now := g.clock.Now()
	today := entity.NewDate(now)
	var departures []entity.Departure

	for _, product := range products {
		capacity := CapacityFor(product.ID).Typical

		for offset := 0; offset < scheduleMonths; offset++ {
			monthDate := utils.AddMonths(now, offset)
			season := entity.ResolveSeason(seasons, int(monthDate.Month()))
			perMonth := DeparturesPerMonth(season.Type)

			for i := 0; i < perMonth; i++ {
				day := int(math.Floor(float64(i+1) * (scheduleDaySpan / float64(perMonth+1))))
				departureDate := time.Date(monthDate.Year(), monthDate.Month(), day, 0, 0, 0, 0, time.UTC)
				if departureDate.Before(now) {
					continue
				}

				daysUntil := utils.DaysBetween(now, departureDate)
				opened := utils.AddMonths(departureDate, -bookingWindowMonths)
				daysSinceOpened := utils.DaysBetween(opened, now)

				rate := ProximityBoost(g.baseBookingRate(season.Type), daysUntil)
				rate = utils.Clamp(rate+(g.rnd.Float64()-0.5)*0.3, 0.1, 0.98)

				bookings := int(utils.RoundHalfUp(float64(capacity) * rate))
				occupancy := float64(bookings) / float64(capacity) * 100

				var velocity float64
				if daysSinceOpened > 0 {
					velocity = float64(bookings) / float64(daysSinceOpened)
				}
				pace := ClassifyPace(velocity, capacity)

				price := utils.RoundHalfUp(product.CurrentPrice * g.departurePriceMultiplier(pace, season.Type))

				departure := entity.Departure{
					ID:                      fmt.Sprintf("d-%s-%s", product.ID, departureDate.Format(entity.DateLayout)),
					ProductID:               product.ID,
					DepartureDate:           entity.NewDate(departureDate),
					ReturnDate:              entity.NewDate(departureDate.AddDate(0, 0, product.Duration)),
					Season:                  season.Name,
					Capacity:                capacity,
					Bookings:                bookings,
					CurrentPrice:            price,
					CostBasis:               product.CostBasis,
					MarginPercent:           entity.Margin(price, product.CostBasis),
					Status:                  DeriveStatus(occupancy, daysUntil),
					BookingPace:             pace,
					DaysUntilDeparture:      daysUntil,
					BookingVelocity:         velocity,
					OccupancyRate:           occupancy,
					RevenuePerAvailableSeat: price * float64(bookings) / float64(capacity),
					OpenedForBookingDate:    entity.NewDate(opened),
				}
				if bookings > 0 {
					lastBooking := today
					departure.LastBookingDate = &lastBooking
				}
				departures = append(departures, departure)
			}
		}
	}

	sort.SliceStable(departures, func(a, b int) bool {
		return departures[a].DepartureDate.Before(departures[b].DepartureDate.Time)
	})
	return departures
}
