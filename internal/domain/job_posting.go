package domain

type JobPosting struct {
	ID           int64   `db:"id" json:"id"`
	Title        string  `db:"title" json:"title"`
	Bio          string  `db:"bio" json:"bio"`
	Compensation float64 `db:"compensation" json:"compensation"`
	LocationID   string  `db:"location_id" json:"location_id"`
	UserID       int64   `db:"user_id" json:"user_id"`
}

type JobPostingUpdate struct {
	Title        *string
	Bio          *string
	Compensation *float64
	LocationID   *string
}

func (u JobPostingUpdate) Empty() bool {
	return u.Title == nil && u.Bio == nil && u.Compensation == nil && u.LocationID == nil
}
