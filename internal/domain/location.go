package domain

type Location struct {
	Zip               string  `db:"zip" json:"zip"`
	CityID            int64   `db:"city_id" json:"city_id"`
	StudentPopulation int64   `db:"student_population" json:"student_population"`
	SafetyRating      float64 `db:"safety_rating" json:"safety_rating"`
}

type LocationUpdate struct {
	CityID            *int64
	StudentPopulation *int64
	SafetyRating      *float64
}

func (u LocationUpdate) Empty() bool {
	return u.CityID == nil && u.StudentPopulation == nil && u.SafetyRating == nil
}
