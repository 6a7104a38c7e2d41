package model

// Airport names are deliberately not unique: big cities commonly have
// several airports, and route search filters on closest_big_city instead.
type Airport struct {
	ID             int    `json:"id" db:"id"`
	Name           string `json:"name" db:"name"`
	ClosestBigCity string `json:"closest_big_city" db:"closest_big_city"`
}

type AirportRequest struct {
	Name           string `json:"name" binding:"required"`
	ClosestBigCity string `json:"closest_big_city" binding:"required"`
}
