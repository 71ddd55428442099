package domain

type Sublet struct {
	ID          int64 `db:"id" json:"id"`
	HousingID   int64 `db:"housing_id" json:"housing_id"`
	SubletterID int64 `db:"subletter_id" json:"subletter_id"`
	StartDate   Date  `db:"start_date" json:"start_date"`
	EndDate     Date  `db:"end_date" json:"end_date"`
}

type SubletUpdate struct {
	HousingID *int64
	StartDate *Date
	EndDate   *Date
}

func (u SubletUpdate) Empty() bool {
	return u.HousingID == nil && u.StartDate == nil && u.EndDate == nil
}
