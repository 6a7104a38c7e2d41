package model

type AirplaneType struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type AirplaneTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type Airplane struct {
	ID             int    `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	Rows           int    `json:"rows" db:"rows"`
	SeatsInRow     int    `json:"seats_in_row" db:"seats_in_row"`
	AirplaneTypeID int    `json:"airplane_type_id" db:"airplane_type_id"`

	AirplaneType *AirplaneType `json:"airplane_type,omitempty" db:"-"`
}

// Capacity is derived from the seat grid, never stored.
func (a *Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

// Geometry returns the physical seat grid of the airplane.
func (a *Airplane) Geometry() SeatGeometry {
	return SeatGeometry{Rows: a.Rows, SeatsInRow: a.SeatsInRow}
}

type AirplaneRequest struct {
	Name           string `json:"name" binding:"required"`
	Rows           int    `json:"rows" binding:"required,gt=0"`
	SeatsInRow     int    `json:"seats_in_row" binding:"required,gt=0"`
	AirplaneTypeID int    `json:"airplane_type_id" binding:"required"`
}

type AirplaneResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType string `json:"airplane_type"`
	Capacity     int    `json:"capacity"`
}
