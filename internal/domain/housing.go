package domain

type Housing struct {
	ID      int64   `db:"id" json:"id"`
	CityID  int64   `db:"city_id" json:"city_id"`
	Zip     string  `db:"zip" json:"zip"`
	Address string  `db:"address" json:"address"`
	Rent    float64 `db:"rent" json:"rent"`
	SqFt    int64   `db:"sq_ft" json:"sq_ft"`
}

// HousingUpdate replaces the supplied fields. CityName is resolved to a city id
// inside the update transaction.
type HousingUpdate struct {
	CityName *string
	Zip      *string
	Address  *string
	Rent     *float64
	SqFt     *int64
}

func (u HousingUpdate) Empty() bool {
	return u.CityName == nil && u.Zip == nil && u.Address == nil && u.Rent == nil && u.SqFt == nil
}
