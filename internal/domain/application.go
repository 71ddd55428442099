package domain

const ApplicationStatusPending = "Pending"

type Application struct {
	ID           int64  `db:"id" json:"id"`
	StudentID    int64  `db:"student_id" json:"student_id"`
	JobPostingID int64  `db:"job_posting_id" json:"job_posting_id"`
	Status       string `db:"status" json:"status"`
}

type ApplicationWithTitle struct {
	Application
	JobTitle string `db:"job_title" json:"job_title"`
}
