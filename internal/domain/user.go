package domain

import "time"

type User struct {
	ID            int64      `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Email         string     `db:"email" json:"email"`
	PhoneNumber   *string    `db:"phone_number" json:"phone_number"`
	CategoryID    int64      `db:"category_id" json:"category_id"`
	CurrentCityID *int64     `db:"current_city_id" json:"current_city_id"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	LastLoginAt   *time.Time `db:"last_login_at" json:"last_login_at"`
}

// UserWithCategory is a user row joined with its category name.
type UserWithCategory struct {
	User
	CategoryName string `db:"category_name" json:"category_name"`
}

type UserUpdate struct {
	Name          *string
	Email         *string
	PhoneNumber   *string
	CategoryID    *int64
	CurrentCityID *int64
}

func (u UserUpdate) Empty() bool {
	return u.Name == nil && u.Email == nil && u.PhoneNumber == nil &&
		u.CategoryID == nil && u.CurrentCityID == nil
}
