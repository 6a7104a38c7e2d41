package model

type Route struct {
	ID            int `json:"id" db:"id"`
	SourceID      int `json:"source_id" db:"source_id"`
	DestinationID int `json:"destination_id" db:"destination_id"`
	Distance      int `json:"distance" db:"distance"`

	Source      *Airport `json:"source,omitempty" db:"-"`
	Destination *Airport `json:"destination,omitempty" db:"-"`
}

type RouteRequest struct {
	SourceID      int `json:"source_id" binding:"required"`
	DestinationID int `json:"destination_id" binding:"required"`
	Distance      int `json:"distance" binding:"required,gt=0"`
}

// RouteFilter matches on the closest_big_city of the endpoint airports,
// case-insensitive substring.
type RouteFilter struct {
	Source      string
	Destination string
}
