package domain

// Facility is a hospital or an airport. Both tables share this shape.
type Facility struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	CityID int64  `db:"city_id" json:"city_id"`
	Zip    string `db:"zip" json:"zip"`
}

type FacilityUpdate struct {
	Name   *string
	CityID *int64
	Zip    *string
}

func (u FacilityUpdate) Empty() bool {
	return u.Name == nil && u.CityID == nil && u.Zip == nil
}
