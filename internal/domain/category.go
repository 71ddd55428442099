package domain

const (
	CategoryStudent       = "Student"
	CategoryEmployer      = "Employer"
	CategoryAdministrator = "Administrator"
	CategoryParent        = "Parent"
)

type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
