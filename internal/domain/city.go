package domain

type City struct {
	ID                int64    `db:"id" json:"city_id"`
	Name              string   `db:"name" json:"name"`
	AvgCostOfLiving   float64  `db:"avg_cost_of_living" json:"avg_cost_of_living"`
	AvgRent           float64  `db:"avg_rent" json:"avg_rent"`
	AvgWage           float64  `db:"avg_wage" json:"avg_wage"`
	Population        int64    `db:"population" json:"population"`
	PropHybridWorkers *float64 `db:"prop_hybrid_workers" json:"prop_hybrid_workers"`
}

type CityUpdate struct {
	Name              *string
	AvgCostOfLiving   *float64
	AvgRent           *float64
	AvgWage           *float64
	Population        *int64
	PropHybridWorkers *float64
}

func (u CityUpdate) Empty() bool {
	return u.Name == nil && u.AvgCostOfLiving == nil && u.AvgRent == nil &&
		u.AvgWage == nil && u.Population == nil && u.PropHybridWorkers == nil
}

// NationalAverages holds the mean of each cost column across all cities.
type NationalAverages struct {
	CostOfLiving float64 `db:"avg_cost_of_living"`
	Rent         float64 `db:"avg_rent"`
	Wage         float64 `db:"avg_wage"`
}

type ZipSafetyRating struct {
	Zip          string  `db:"zip" json:"zip"`
	SafetyRating float64 `db:"safety_rating" json:"safety_rating"`
}

type ZipStudentPopulation struct {
	Zip               string `db:"zip" json:"zip"`
	StudentPopulation int64  `db:"student_population" json:"student_population"`
}

type CityStudentPopulation struct {
	CityName          string `json:"city_name"`
	StudentPopulation int64  `json:"student_population"`
}
