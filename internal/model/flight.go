package model

import "time"

type Flight struct {
	ID            int       `json:"id" db:"id"`
	RouteID       int       `json:"route_id" db:"route_id"`
	AirplaneID    int       `json:"airplane_id" db:"airplane_id"`
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" db:"arrival_time"`

	Route    *Route    `json:"route,omitempty" db:"-"`
	Airplane *Airplane `json:"airplane,omitempty" db:"-"`
	Crews    []Crew    `json:"crews,omitempty" db:"-"`
}

// No ordering invariant between departure and arrival is enforced; the
// schedule data is entered by administrators and may describe e.g. a flight
// crossing the date line.
type FlightRequest struct {
	RouteID       int       `json:"route_id" binding:"required"`
	AirplaneID    int       `json:"airplane_id" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	CrewIDs       []int     `json:"crew_ids"`
}

// FlightFilter narrows flight listings. Date matches the departure calendar
// day in UTC; Source and Destination are case-insensitive substrings of the
// endpoint airport names.
type FlightFilter struct {
	Date        *time.Time
	Source      string
	Destination string
}

// SeatGeometry is the physical seat grid of an airplane, the explicit input
// to placement validation and availability accounting.
type SeatGeometry struct {
	Rows       int
	SeatsInRow int
}

// TicketsAvailable derives remaining seats from capacity and the issued
// ticket count. It is recomputed on every query; there is no stored counter
// to drift. A non-positive result means the flight is fully booked.
func TicketsAvailable(geo SeatGeometry, issued int) int {
	return geo.Rows*geo.SeatsInRow - issued
}

// FlightListRow is what the repository reads per flight: schedule fields
// plus the raw inputs for availability accounting.
type FlightListRow struct {
	ID            int
	Source        string
	Destination   string
	AirplaneName  string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Geometry      SeatGeometry
	IssuedTickets int
}

type FlightListItem struct {
	ID               int       `json:"id"`
	Source           string    `json:"source"`
	Destination      string    `json:"destination"`
	Airplane         string    `json:"airplane"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	TicketsAvailable int       `json:"tickets_available"`
}

type FlightDetail struct {
	ID               int              `json:"id"`
	Route            *Route           `json:"route"`
	Airplane         AirplaneResponse `json:"airplane"`
	Crews            []string         `json:"crews"`
	DepartureTime    time.Time        `json:"departure_time"`
	ArrivalTime      time.Time        `json:"arrival_time"`
	TicketsAvailable int              `json:"tickets_available"`
	TakenSeats       []Seat           `json:"taken_seats"`
}
