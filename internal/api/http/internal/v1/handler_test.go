package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coopconnect/backend/internal/domain"
	"github.com/coopconnect/backend/internal/service"
	mock_service "github.com/coopconnect/backend/internal/service/mock"
	"github.com/coopconnect/backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	cities       *mock_service.Cities
	categories   *mock_service.Categories
	users        *mock_service.Users
	locations    *mock_service.Locations
	housing      *mock_service.Housing
	jobPostings  *mock_service.JobPostings
	applications *mock_service.Applications
	sublets      *mock_service.Sublets
	hospitals    *mock_service.Facilities
	airports     *mock_service.Facilities
	performance  *mock_service.Performance
}

func (m *serviceMocks) assertExpectations(t *testing.T) {
	t.Helper()
	mock.AssertExpectationsForObjects(t,
		m.cities, m.categories, m.users, m.locations, m.housing, m.jobPostings,
		m.applications, m.sublets, m.hospitals, m.airports, m.performance,
	)
}

func newTestRouter(t *testing.T) (*gin.Engine, *serviceMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.RegisterGinValidator()

	m := &serviceMocks{
		cities:       new(mock_service.Cities),
		categories:   new(mock_service.Categories),
		users:        new(mock_service.Users),
		locations:    new(mock_service.Locations),
		housing:      new(mock_service.Housing),
		jobPostings:  new(mock_service.JobPostings),
		applications: new(mock_service.Applications),
		sublets:      new(mock_service.Sublets),
		hospitals:    new(mock_service.Facilities),
		airports:     new(mock_service.Facilities),
		performance:  new(mock_service.Performance),
	}
	services := &service.Services{
		Cities:       m.cities,
		Categories:   m.categories,
		Users:        m.users,
		Locations:    m.locations,
		Housing:      m.housing,
		JobPostings:  m.jobPostings,
		Applications: m.applications,
		Sublets:      m.sublets,
		Hospitals:    m.hospitals,
		Airports:     m.airports,
		Performance:  m.performance,
	}

	router := gin.New()
	NewHandler(services).Init(&router.RouterGroup)
	t.Cleanup(func() { m.assertExpectations(t) })
	return router, m
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateJobPosting(t *testing.T) {
	validBody := map[string]any{
		"title":        "Data Analyst Co-op",
		"bio":          "Six month co-op",
		"compensation": 25.5,
		"location_id":  "02115",
		"user_email":   "a@b.com",
	}

	t.Run("created", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.jobPostings.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.JobPosting) bool {
			return p.Title == "Data Analyst Co-op" && p.Compensation == 25.5 && p.LocationID == "02115"
		}), "a@b.com").Return(int64(7), nil).Once()

		w := doRequest(t, router, http.MethodPost, "/job_postings", validBody)

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decode[CreatedStruct](t, w)
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "Job posting created successfully", resp.Message)
	})

	t.Run("unknown owner email", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.jobPostings.On("Create", mock.Anything, mock.Anything, "a@b.com").
			Return(int64(0), service.ErrUserNotFound).Once()

		w := doRequest(t, router, http.MethodPost, "/job_postings", validBody)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", decode[ErrorStruct](t, w).Error)
	})

	t.Run("missing title", func(t *testing.T) {
		router, _ := newTestRouter(t)
		body := map[string]any{
			"bio":          "Six month co-op",
			"compensation": 25.5,
			"location_id":  "02115",
			"user_email":   "a@b.com",
		}

		w := doRequest(t, router, http.MethodPost, "/job_postings", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ValidationErrorStruct](t, w)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "title", resp.Errors[0].FieldKey)
	})

	t.Run("malformed zip", func(t *testing.T) {
		router, _ := newTestRouter(t)
		body := map[string]any{
			"title":        "Data Analyst Co-op",
			"bio":          "Six month co-op",
			"compensation": 25.5,
			"location_id":  "2115",
			"user_email":   "a@b.com",
		}

		w := doRequest(t, router, http.MethodPost, "/job_postings", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ValidationErrorStruct](t, w)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "location_id", resp.Errors[0].FieldKey)
	})
}

func TestSearchCitiesByCost(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		router, m := newTestRouter(t)
		matches := []domain.CityCostMatch{
			{CityID: 1, Name: "Boston", CostOfLiving: 2000},
			{CityID: 2, Name: "Austin", CostOfLiving: 1700},
		}
		m.cities.On("SearchByCost", mock.Anything, 2000.0).Return(matches, nil).Once()

		w := doRequest(t, router, http.MethodGet, "/city/1/2000", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[[]domain.CityCostMatch](t, w)
		require.Len(t, resp, 2)
		assert.Equal(t, "Boston", resp[0].Name)
	})

	t.Run("nothing in range", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.cities.On("SearchByCost", mock.Anything, 100.0).Return(nil, service.ErrNoCitiesInCostRange).Once()

		w := doRequest(t, router, http.MethodGet, "/city/1/100", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No cities found within the target cost range", decode[ErrorStruct](t, w).Error)
	})

	t.Run("target is not a number", func(t *testing.T) {
		router, _ := newTestRouter(t)

		for _, target := range []string{"cheap", "NaN", "Inf", "+Inf", "-Inf"} {
			w := doRequest(t, router, http.MethodGet, "/city/1/"+target, nil)

			require.Equal(t, http.StatusBadRequest, w.Code, target)
			assert.Equal(t, "target_cost", decode[ErrorStruct](t, w).Field)
		}
	})

	t.Run("negative target", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.cities.On("SearchByCost", mock.Anything, -5.0).
			Return(nil, domain.NewValidationError("target_cost", "must be a non-negative number")).Once()

		w := doRequest(t, router, http.MethodGet, "/city/1/-5", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "target_cost", decode[ErrorStruct](t, w).Field)
	})

	t.Run("id must be positive", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doRequest(t, router, http.MethodGet, "/city/0/2000", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "id", decode[ErrorStruct](t, w).Field)
	})
}

func TestSearchCitiesByHybridProportion(t *testing.T) {
	t.Run("missing proportion", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doRequest(t, router, http.MethodGet, "/cities/hybrid", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "proportion", decode[ErrorStruct](t, w).Field)
	})

	t.Run("not a finite number", func(t *testing.T) {
		router, _ := newTestRouter(t)

		for _, p := range []string{"abc", "NaN", "Inf"} {
			w := doRequest(t, router, http.MethodGet, "/cities/hybrid?proportion="+p, nil)

			require.Equal(t, http.StatusBadRequest, w.Code, p)
			assert.Equal(t, "proportion", decode[ErrorStruct](t, w).Field)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.cities.On("SearchByHybridProportion", mock.Anything, 1.5).
			Return(nil, domain.NewValidationError("proportion", "must be between 0 and 1")).Once()

		w := doRequest(t, router, http.MethodGet, "/cities/hybrid?proportion=1.5", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "proportion", decode[ErrorStruct](t, w).Field)
	})

	t.Run("no matches", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.cities.On("SearchByHybridProportion", mock.Anything, 0.9).Return(nil, nil).Once()

		w := doRequest(t, router, http.MethodGet, "/cities/hybrid?proportion=0.9", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[hybridSearchResponse](t, w)
		assert.Equal(t, 0.9, resp.TargetProportion)
		assert.NotNil(t, resp.Cities)
		assert.Empty(t, resp.Cities)
		assert.NotEmpty(t, resp.Message)
	})

	t.Run("matches", func(t *testing.T) {
		router, m := newTestRouter(t)
		matches := []domain.CityHybridMatch{{CityID: 1, Name: "Boston", PropHybridWorkers: 0.45, Difference: 0.05}}
		m.cities.On("SearchByHybridProportion", mock.Anything, 0.5).Return(matches, nil).Once()

		w := doRequest(t, router, http.MethodGet, "/cities/hybrid?proportion=0.5", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[hybridSearchResponse](t, w)
		require.Len(t, resp.Cities, 1)
		assert.Empty(t, resp.Message)
	})
}

func TestDeleteCity_RepeatedDeleteIsNotFound(t *testing.T) {
	router, m := newTestRouter(t)
	m.cities.On("Delete", mock.Anything, int64(3)).Return(nil).Once()
	m.cities.On("Delete", mock.Anything, int64(3)).Return(service.ErrCityNotFound).Twice()

	w := doRequest(t, router, http.MethodDelete, "/city/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	for i := 0; i < 2; i++ {
		w = doRequest(t, router, http.MethodDelete, "/city/3", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "City not found", decode[ErrorStruct](t, w).Error)
	}
}

func TestUserUpdateAndDelete(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.users.On("Update", mock.Anything, int64(5), domain.UserUpdate{Name: ptr("Samantha")}).Return(nil).Once()
		m.users.On("Update", mock.Anything, int64(6), domain.UserUpdate{Name: ptr("Samantha")}).Return(service.ErrUserNotFound).Once()

		w := doRequest(t, router, http.MethodPut, "/user/5", map[string]any{"name": "Samantha"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User updated successfully", decode[MessageStruct](t, w).Message)

		w = doRequest(t, router, http.MethodPut, "/user/6", map[string]any{"name": "Samantha"})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", decode[ErrorStruct](t, w).Error)
	})

	t.Run("update with bad email", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doRequest(t, router, http.MethodPut, "/user/5", map[string]any{"email": "not-an-email"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ValidationErrorStruct](t, w)
		require.Len(t, resp.Errors, 1)
		assert.Equal(t, "email", resp.Errors[0].FieldKey)
	})

	t.Run("update with unknown category", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.users.On("Update", mock.Anything, int64(5), domain.UserUpdate{CategoryID: ptr(int64(99))}).
			Return(fmt.Errorf("update user: %w", domain.ErrMissingParent)).Once()

		w := doRequest(t, router, http.MethodPut, "/user/5", map[string]any{"category_id": 99})

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Referenced record not found", decode[ErrorStruct](t, w).Error)
	})

	t.Run("repeated delete", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.users.On("Delete", mock.Anything, int64(5)).Return(nil).Once()
		m.users.On("Delete", mock.Anything, int64(5)).Return(service.ErrUserNotFound).Twice()

		w := doRequest(t, router, http.MethodDelete, "/user/5", nil)
		require.Equal(t, http.StatusOK, w.Code)

		for i := 0; i < 2; i++ {
			w = doRequest(t, router, http.MethodDelete, "/user/5", nil)
			require.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "User not found", decode[ErrorStruct](t, w).Error)
		}
	})

	t.Run("id is not a number", func(t *testing.T) {
		router, _ := newTestRouter(t)

		w := doRequest(t, router, http.MethodDelete, "/user/abc", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "id", decode[ErrorStruct](t, w).Field)
	})
}

func ptr[T any](v T) *T {
	return &v
}

func TestErrorStatusMapping(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.cities.On("Update", mock.Anything, int64(1), domain.CityUpdate{}).Return(domain.ErrNothingToUpdate).Once()

		w := doRequest(t, router, http.MethodPut, "/city/1", map[string]any{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.categories.On("Create", mock.Anything, "Student").Return(int64(0), domain.ErrDuplicateEntry).Once()

		w := doRequest(t, router, http.MethodPost, "/categories", map[string]any{"name": " Student "})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unexpected", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.users.On("GetAll", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		w := doRequest(t, router, http.MethodGet, "/user", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "connection refused", decode[ErrorStruct](t, w).Error)
	})
}

func TestGetUsersCreatedAfter(t *testing.T) {
	router, m := newTestRouter(t)
	after := domain.NewDate(2024, 1, 15)
	m.users.On("GetCreatedAfter", mock.Anything, after.Time).Return([]domain.UserWithCategory{}, nil).Once()

	w := doRequest(t, router, http.MethodGet, "/users/created_after/2024-01-15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/users/created_after/15-01-2024", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFacilitiesByCity(t *testing.T) {
	router, m := newTestRouter(t)
	m.hospitals.On("GetByCity", mock.Anything, "Boston").
		Return([]domain.Facility{{ID: 1, Name: "General", CityID: 1, Zip: "02115"}}, nil).Once()
	m.airports.On("GetByCity", mock.Anything, "1").Return([]domain.Facility{}, nil).Once()

	w := doRequest(t, router, http.MethodGet, "/hospitals/Boston", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]domain.Facility](t, w), 1)

	w = doRequest(t, router, http.MethodGet, "/airports/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestStudentRoutes(t *testing.T) {
	t.Run("apply", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.applications.On("Apply", mock.Anything, int64(4), int64(9)).Return(int64(12), nil).Once()

		w := doRequest(t, router, http.MethodPost, "/students/4/apply", map[string]any{"job_posting_id": 9})

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, int64(12), decode[CreatedStruct](t, w).ID)
	})

	t.Run("withdraw foreign application", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.applications.On("Withdraw", mock.Anything, int64(4), int64(30)).Return(service.ErrApplicationNotFound).Once()

		w := doRequest(t, router, http.MethodDelete, "/students/4/applications/30", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Application not found", decode[ErrorStruct](t, w).Error)
	})

	t.Run("create sublet", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.sublets.On("Create", mock.Anything, &domain.Sublet{
			HousingID:   2,
			SubletterID: 4,
			StartDate:   domain.NewDate(2024, 5, 1),
			EndDate:     domain.NewDate(2024, 8, 31),
		}).Return(int64(3), nil).Once()

		w := doRequest(t, router, http.MethodPost, "/students/4/sublet", map[string]any{
			"housing_id": 2,
			"start_date": "2024-05-01",
			"end_date":   "2024-08-31",
		})

		require.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestGetSubletsWithin(t *testing.T) {
	router, m := newTestRouter(t)
	m.sublets.On("GetWithin", mock.Anything, domain.NewDate(2024, 5, 1), domain.NewDate(2024, 9, 1)).
		Return([]domain.Sublet{}, nil).Once()

	w := doRequest(t, router, http.MethodGet, "/sublets/dates?start_date=2024-05-01&end_date=2024-09-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/sublets/dates?start_date=2024-05-01", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode[ValidationErrorStruct](t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "end_date", resp.Errors[0].FieldKey)
}

func TestPerformanceRoutes(t *testing.T) {
	router, m := newTestRouter(t)
	day := domain.NewDate(2024, 3, 2)
	m.performance.On("GetDates", mock.Anything).Return([]domain.Date{day}, nil).Once()
	m.performance.On("GetByDate", mock.Anything, day).Return(nil, service.ErrPerformanceNotFound).Once()

	w := doRequest(t, router, http.MethodGet, "/performance/dates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["2024-03-02"]`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/performance/2024-03-02", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/performance/yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
