package entity

// DepartureStatus is derived from occupancy at generation time
type DepartureStatus string

const (
	StatusOpen       DepartureStatus = "open"
	StatusNearlyFull DepartureStatus = "nearly_full"
	StatusSoldOut    DepartureStatus = "sold_out"
	StatusCancelled  DepartureStatus = "cancelled"
)

// BookingPace compares booking velocity against a linear 180-day fill
type BookingPace string

const (
	PaceFast    BookingPace = "fast"
	PaceNormal  BookingPace = "normal"
	PaceSlow    BookingPace = "slow"
	PaceStalled BookingPace = "stalled"
)

// Departure is a scheduled run of a product. DaysUntilDeparture is relative
// to the generation instant and goes stale afterwards.
type Departure struct {
	ID                      string          `json:"id"`
	ProductID               string          `json:"productId"`
	DepartureDate           Date            `json:"departureDate"`
	ReturnDate              Date            `json:"returnDate"`
	Season                  string          `json:"season"`
	Capacity                int             `json:"capacity"`
	Bookings                int             `json:"bookings"`
	CurrentPrice            float64         `json:"currentPrice"`
	CostBasis               float64         `json:"costBasis"`
	MarginPercent           float64         `json:"marginPercent"`
	Status                  DepartureStatus `json:"status"`
	BookingPace             BookingPace     `json:"bookingPace"`
	DaysUntilDeparture      int             `json:"daysUntilDeparture"`
	BookingVelocity         float64         `json:"bookingVelocity"`
	OccupancyRate           float64         `json:"occupancyRate"`
	RevenuePerAvailableSeat float64         `json:"revenuePerAvailableSeat"`
	LastBookingDate         *Date           `json:"lastBookingDate,omitempty"`
	OpenedForBookingDate    Date            `json:"openedForBookingDate"`
}

// AvailableSeats is capacity minus bookings, never negative
func (d Departure) AvailableSeats() int {
	if d.Bookings >= d.Capacity {
		return 0
	}
	return d.Capacity - d.Bookings
}

// Revenue is price times bookings
func (d Departure) Revenue() float64 {
	return d.CurrentPrice * float64(d.Bookings)
}
