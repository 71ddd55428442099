package repository

import (
	"context"
	"time"

	"github.com/coopconnect/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Cities       Cities
	Categories   Categories
	Users        Users
	Locations    Locations
	Housing      Housing
	JobPostings  JobPostings
	Applications Applications
	Sublets      Sublets
	Hospitals    Facilities
	Airports     Facilities
	Performance  Performance
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Cities:       newCityRepository(db),
		Categories:   newCategoryRepository(db),
		Users:        newUserRepository(db),
		Locations:    newLocationRepository(db),
		Housing:      newHousingRepository(db),
		JobPostings:  newJobPostingRepository(db),
		Applications: newApplicationRepository(db),
		Sublets:      newSubletRepository(db),
		Hospitals:    newFacilityRepository(db, hospitalTable),
		Airports:     newFacilityRepository(db, airportTable),
		Performance:  newPerformanceRepository(db),
	}
}

type Cities interface {
	GetAll(ctx context.Context) ([]domain.City, error)
	GetOneByID(ctx context.Context, id int64) (*domain.City, error)
	Create(ctx context.Context, city *domain.City) (int64, error)
	Update(ctx context.Context, id int64, upd domain.CityUpdate) error
	Delete(ctx context.Context, id int64) error
	GetByCostRange(ctx context.Context, target, low, high float64, limit int) ([]domain.City, error)
	GetNationalAverages(ctx context.Context) (*domain.NationalAverages, error)
	GetByHybridProportion(ctx context.Context, target, tolerance float64) ([]domain.CityHybridMatch, error)
}

type Categories interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (int64, error)
}

type Users interface {
	GetAll(ctx context.Context) ([]domain.UserWithCategory, error)
	GetOneByID(ctx context.Context, id int64) (*domain.UserWithCategory, error)
	GetByEmail(ctx context.Context, email string) (*domain.UserWithCategory, error)
	Search(ctx context.Context, term string) ([]domain.UserWithCategory, error)
	GetByCategory(ctx context.Context, category string) ([]domain.UserWithCategory, error)
	GetByCity(ctx context.Context, cityID int64, category string) ([]domain.UserWithCategory, error)
	GetCreatedAfter(ctx context.Context, after time.Time) ([]domain.UserWithCategory, error)
	Create(ctx context.Context, user *domain.User) (int64, error)
	Update(ctx context.Context, id int64, upd domain.UserUpdate) error
	Delete(ctx context.Context, id int64) error
}

type Locations interface {
	GetAll(ctx context.Context) ([]domain.Location, error)
	GetOneByZip(ctx context.Context, zip string) (*domain.Location, error)
	GetZipCodes(ctx context.Context) ([]string, error)
	Create(ctx context.Context, location *domain.Location) error
	Update(ctx context.Context, zip string, upd domain.LocationUpdate) error
	Delete(ctx context.Context, zip string) error
	GetSafetyRatingsByCityName(ctx context.Context, cityName string) ([]domain.ZipSafetyRating, error)
	GetStudentPopulationsByCityName(ctx context.Context, cityName string) ([]domain.ZipStudentPopulation, error)
	SumStudentPopulationByCityName(ctx context.Context, cityName string) (int64, error)
}

type Housing interface {
	GetAll(ctx context.Context) ([]domain.Housing, error)
	GetOneByID(ctx context.Context, id int64) (*domain.Housing, error)
	Create(ctx context.Context, housing *domain.Housing, cityName string) (int64, error)
	Update(ctx context.Context, id int64, upd domain.HousingUpdate) error
	Delete(ctx context.Context, id int64) error
}

type JobPostings interface {
	GetAll(ctx context.Context) ([]domain.JobPosting, error)
	GetOneByID(ctx context.Context, id int64) (*domain.JobPosting, error)
	GetByUser(ctx context.Context, userID int64) ([]domain.JobPosting, error)
	GetByLocation(ctx context.Context, zip string) ([]domain.JobPosting, error)
	GetNotAppliedBy(ctx context.Context, studentID int64) ([]domain.JobPosting, error)
	Create(ctx context.Context, posting *domain.JobPosting, userEmail string) (int64, error)
	Update(ctx context.Context, id int64, upd domain.JobPostingUpdate) error
	Delete(ctx context.Context, id int64) error
}

type Applications interface {
	Create(ctx context.Context, application *domain.Application) (int64, error)
	GetByStudent(ctx context.Context, studentID int64) ([]domain.ApplicationWithTitle, error)
	Delete(ctx context.Context, studentID, applicationID int64) error
}

type Sublets interface {
	GetAll(ctx context.Context) ([]domain.Sublet, error)
	GetOneByID(ctx context.Context, id int64) (*domain.Sublet, error)
	GetBySubletter(ctx context.Context, userID int64) ([]domain.Sublet, error)
	GetWithin(ctx context.Context, start, end domain.Date) ([]domain.Sublet, error)
	Create(ctx context.Context, sublet *domain.Sublet) (int64, error)
	Update(ctx context.Context, id int64, upd domain.SubletUpdate) error
	Delete(ctx context.Context, id int64) error
}

type Facilities interface {
	GetAll(ctx context.Context) ([]domain.Facility, error)
	GetByCityID(ctx context.Context, cityID int64) ([]domain.Facility, error)
	GetByCityName(ctx context.Context, cityName string) ([]domain.Facility, error)
	Create(ctx context.Context, facility *domain.Facility) (int64, error)
	Update(ctx context.Context, id int64, upd domain.FacilityUpdate) error
	Delete(ctx context.Context, id int64) error
}

type Performance interface {
	GetDates(ctx context.Context) ([]domain.Date, error)
	GetByDate(ctx context.Context, date domain.Date) (*domain.Performance, error)
	Create(ctx context.Context, perf *domain.Performance) (int64, error)
	Update(ctx context.Context, date domain.Date, upd domain.PerformanceUpdate) error
	Delete(ctx context.Context, date domain.Date) error
}
