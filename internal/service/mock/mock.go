package mock_service

import (
	"context"
	"time"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/service"

	"github.com/stretchr/testify/mock"
)

var (
	_ service.Cities       = (*Cities)(nil)
	_ service.Categories   = (*Categories)(nil)
	_ service.Users        = (*Users)(nil)
	_ service.Locations    = (*Locations)(nil)
	_ service.Housing      = (*Housing)(nil)
	_ service.JobPostings  = (*JobPostings)(nil)
	_ service.Applications = (*Applications)(nil)
	_ service.Sublets      = (*Sublets)(nil)
	_ service.Facilities   = (*Facilities)(nil)
	_ service.Performance  = (*Performance)(nil)
)

func value[T any](args mock.Arguments, index int) T {
	var zero T
	if v, ok := args.Get(index).(T); ok {
		return v
	}
	return zero
}

type Cities struct {
	mock.Mock
}

func (m *Cities) GetAll(ctx context.Context) ([]domain.City, error) {
	args := m.Called(ctx)
	return value[[]domain.City](args, 0), args.Error(1)
}

func (m *Cities) GetOneByID(ctx context.Context, id int64) (*domain.City, error) {
	args := m.Called(ctx, id)
	return value[*domain.City](args, 0), args.Error(1)
}

func (m *Cities) Create(ctx context.Context, city *domain.City) (int64, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Cities) Update(ctx context.Context, id int64, upd domain.CityUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *Cities) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *Cities) SearchByCost(ctx context.Context, targetCost float64) ([]domain.CityCostMatch, error) {
	args := m.Called(ctx, targetCost)
	return value[[]domain.CityCostMatch](args, 0), args.Error(1)
}

func (m *Cities) SearchByHybridProportion(ctx context.Context, proportion float64) ([]domain.CityHybridMatch, error) {
	args := m.Called(ctx, proportion)
	return value[[]domain.CityHybridMatch](args, 0), args.Error(1)
}

type Categories struct {
	mock.Mock
}

func (m *Categories) GetAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return value[[]domain.Category](args, 0), args.Error(1)
}

func (m *Categories) Create(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type Users struct {
	mock.Mock
}

func (m *Users) GetAll(ctx context.Context) ([]domain.UserWithCategory, error) {
	args := m.Called(ctx)
	return value[[]domain.UserWithCategory](args, 0), args.Error(1)
}

func (m *Users) GetOneByID(ctx context.Context, id int64) (*domain.UserWithCategory, error) {
	args := m.Called(ctx, id)
	return value[*domain.UserWithCategory](args, 0), args.Error(1)
}

func (m *Users) GetByEmail(ctx context.Context, email string) (*domain.UserWithCategory, error) {
	args := m.Called(ctx, email)
	return value[*domain.UserWithCategory](args, 0), args.Error(1)
}

func (m *Users) Search(ctx context.Context, term string) ([]domain.UserWithCategory, error) {
	args := m.Called(ctx, term)
	return value[[]domain.UserWithCategory](args, 0), args.Error(1)
}

func (m *Users) GetByCategory(ctx context.Context, category string) ([]domain.UserWithCategory, error) {
	args := m.Called(ctx, category)
	return value[[]domain.UserWithCategory](args, 0), args.Error(1)
}

func (m *Users) GetByCity(ctx context.Context, cityID int64, category string) ([]domain.UserWithCategory, error) {
	args := m.Called(ctx, cityID, category)
	return value[[]domain.UserWithCategory](args, 0), args.Error(1)
}

func (m *Users) GetCreatedAfter(ctx context.Context, after time.Time) ([]domain.UserWithCategory, error) {
	args := m.Called(ctx, after)
	return value[[]domain.UserWithCategory](args, 0), args.Error(1)
}

func (m *Users) Create(ctx context.Context, user *domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Users) Update(ctx context.Context, id int64, upd domain.UserUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *Users) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type Locations struct {
	mock.Mock
}

func (m *Locations) GetAll(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return value[[]domain.Location](args, 0), args.Error(1)
}

func (m *Locations) GetOneByZip(ctx context.Context, zip string) (*domain.Location, error) {
	args := m.Called(ctx, zip)
	return value[*domain.Location](args, 0), args.Error(1)
}

func (m *Locations) GetZipCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return value[[]string](args, 0), args.Error(1)
}

func (m *Locations) Create(ctx context.Context, location *domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *Locations) Update(ctx context.Context, zip string, upd domain.LocationUpdate) error {
	args := m.Called(ctx, zip, upd)
	return args.Error(0)
}

func (m *Locations) Delete(ctx context.Context, zip string) error {
	args := m.Called(ctx, zip)
	return args.Error(0)
}

func (m *Locations) GetCityStudentPopulation(ctx context.Context, cityName string) (*domain.CityStudentPopulation, error) {
	args := m.Called(ctx, cityName)
	return value[*domain.CityStudentPopulation](args, 0), args.Error(1)
}

func (m *Locations) GetCitySafetyRatings(ctx context.Context, cityName string) ([]domain.ZipSafetyRating, error) {
	args := m.Called(ctx, cityName)
	return value[[]domain.ZipSafetyRating](args, 0), args.Error(1)
}

func (m *Locations) GetCityZipCodes(ctx context.Context, cityName string) ([]domain.ZipStudentPopulation, error) {
	args := m.Called(ctx, cityName)
	return value[[]domain.ZipStudentPopulation](args, 0), args.Error(1)
}

type Housing struct {
	mock.Mock
}

func (m *Housing) GetAll(ctx context.Context) ([]domain.Housing, error) {
	args := m.Called(ctx)
	return value[[]domain.Housing](args, 0), args.Error(1)
}

func (m *Housing) GetOneByID(ctx context.Context, id int64) (*domain.Housing, error) {
	args := m.Called(ctx, id)
	return value[*domain.Housing](args, 0), args.Error(1)
}

func (m *Housing) Create(ctx context.Context, housing *domain.Housing, cityName string) (int64, error) {
	args := m.Called(ctx, housing, cityName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Housing) Update(ctx context.Context, id int64, upd domain.HousingUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *Housing) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type JobPostings struct {
	mock.Mock
}

func (m *JobPostings) GetAll(ctx context.Context) ([]domain.JobPosting, error) {
	args := m.Called(ctx)
	return value[[]domain.JobPosting](args, 0), args.Error(1)
}

func (m *JobPostings) GetOneByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	return value[*domain.JobPosting](args, 0), args.Error(1)
}

func (m *JobPostings) GetByUser(ctx context.Context, userID int64) ([]domain.JobPosting, error) {
	args := m.Called(ctx, userID)
	return value[[]domain.JobPosting](args, 0), args.Error(1)
}

func (m *JobPostings) GetByLocation(ctx context.Context, zip string) ([]domain.JobPosting, error) {
	args := m.Called(ctx, zip)
	return value[[]domain.JobPosting](args, 0), args.Error(1)
}

func (m *JobPostings) Create(ctx context.Context, posting *domain.JobPosting, userEmail string) (int64, error) {
	args := m.Called(ctx, posting, userEmail)
	return args.Get(0).(int64), args.Error(1)
}

func (m *JobPostings) Update(ctx context.Context, id int64, upd domain.JobPostingUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *JobPostings) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type Applications struct {
	mock.Mock
}

func (m *Applications) GetOpenJobs(ctx context.Context, studentID int64) ([]domain.JobPosting, error) {
	args := m.Called(ctx, studentID)
	return value[[]domain.JobPosting](args, 0), args.Error(1)
}

func (m *Applications) Apply(ctx context.Context, studentID, jobPostingID int64) (int64, error) {
	args := m.Called(ctx, studentID, jobPostingID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Applications) GetByStudent(ctx context.Context, studentID int64) ([]domain.ApplicationWithTitle, error) {
	args := m.Called(ctx, studentID)
	return value[[]domain.ApplicationWithTitle](args, 0), args.Error(1)
}

func (m *Applications) Withdraw(ctx context.Context, studentID, applicationID int64) error {
	args := m.Called(ctx, studentID, applicationID)
	return args.Error(0)
}

type Sublets struct {
	mock.Mock
}

func (m *Sublets) GetAll(ctx context.Context) ([]domain.Sublet, error) {
	args := m.Called(ctx)
	return value[[]domain.Sublet](args, 0), args.Error(1)
}

func (m *Sublets) GetBySubletter(ctx context.Context, userID int64) ([]domain.Sublet, error) {
	args := m.Called(ctx, userID)
	return value[[]domain.Sublet](args, 0), args.Error(1)
}

func (m *Sublets) GetWithin(ctx context.Context, start, end domain.Date) ([]domain.Sublet, error) {
	args := m.Called(ctx, start, end)
	return value[[]domain.Sublet](args, 0), args.Error(1)
}

func (m *Sublets) Create(ctx context.Context, sublet *domain.Sublet) (int64, error) {
	args := m.Called(ctx, sublet)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Sublets) Update(ctx context.Context, id int64, upd domain.SubletUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *Sublets) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type Facilities struct {
	mock.Mock
}

func (m *Facilities) GetAll(ctx context.Context) ([]domain.Facility, error) {
	args := m.Called(ctx)
	return value[[]domain.Facility](args, 0), args.Error(1)
}

func (m *Facilities) GetByCity(ctx context.Context, city string) ([]domain.Facility, error) {
	args := m.Called(ctx, city)
	return value[[]domain.Facility](args, 0), args.Error(1)
}

func (m *Facilities) Create(ctx context.Context, facility *domain.Facility) (int64, error) {
	args := m.Called(ctx, facility)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Facilities) Update(ctx context.Context, id int64, upd domain.FacilityUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *Facilities) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type Performance struct {
	mock.Mock
}

func (m *Performance) GetDates(ctx context.Context) ([]domain.Date, error) {
	args := m.Called(ctx)
	return value[[]domain.Date](args, 0), args.Error(1)
}

func (m *Performance) GetByDate(ctx context.Context, date domain.Date) (*domain.Performance, error) {
	args := m.Called(ctx, date)
	return value[*domain.Performance](args, 0), args.Error(1)
}

func (m *Performance) Create(ctx context.Context, perf *domain.Performance) (int64, error) {
	args := m.Called(ctx, perf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Performance) Update(ctx context.Context, date domain.Date, upd domain.PerformanceUpdate) error {
	args := m.Called(ctx, date, upd)
	return args.Error(0)
}

func (m *Performance) Delete(ctx context.Context, date domain.Date) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}
