package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/valleclinic/clinic-api/internal/middleware"
	"github.com/valleclinic/clinic-api/internal/models"
	ucAppointment "github.com/valleclinic/clinic-api/internal/usecase/appointment"
)

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) GetClientByID(ctx context.Context, id uint) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *mockAppointmentRepo) GetServicesByIDs(ctx context.Context, ids []uint) ([]models.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *mockAppointmentRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockAppointmentRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *mockAppointmentRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment, services []models.Service) error {
	args := m.Called(ctx, ap, services)
	return args.Error(0)
}

func (m *mockAppointmentRepo) SoftDeleteAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

// newAppointmentRouter mounts the handler behind a stub auth middleware that
// injects a fixed user.
func newAppointmentRouter(repo *mockAppointmentRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, nil),
		ucAppointment.NewUpdateAppointment(repo, nil),
		ucAppointment.NewDeleteAppointment(repo, nil),
		ucAppointment.NewGetAppointment(repo),
		ucAppointment.NewListAppointments(repo),
		nil,
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(1))
		c.Set(middleware.ContextUserRole, "user")
	})

	r.POST("/api/appointments", h.Create)
	r.GET("/api/appointments", h.List)
	r.GET("/api/appointments/:id", h.GetByID)
	return r
}

func TestAppointmentCreateEndpoint(t *testing.T) {
	repo := &mockAppointmentRepo{}
	router := newAppointmentRouter(repo)

	repo.On("GetClientByID", mock.Anything, uint(10)).Return(&models.Client{ID: 10, FirstName: "Ana"}, nil)
	repo.On("GetServicesByIDs", mock.Anything, []uint{20}).Return([]models.Service{{ID: 20, Name: "Consulta"}}, nil)
	repo.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil)

	body := `{"client_id":10,"service_ids":[20],"appointment_date":"2024-06-15","appointment_time":"10:00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Status   string `json:"status"`
			ClientID uint   `json:"client_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "pending", resp.Data.Status)
	assert.Equal(t, uint(10), resp.Data.ClientID)
}

func TestAppointmentCreateEndpointRejectsIncompleteBody(t *testing.T) {
	repo := &mockAppointmentRepo{}
	router := newAppointmentRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", strings.NewReader(`{"client_id":10}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestAppointmentGetEndpointNotFound(t *testing.T) {
	repo := &mockAppointmentRepo{}
	router := newAppointmentRouter(repo)

	repo.On("GetAppointmentByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "appointment_not_found")
}

func TestAppointmentListEndpointEmpty(t *testing.T) {
	repo := &mockAppointmentRepo{}
	router := newAppointmentRouter(repo)

	repo.On("ListAppointments", mock.Anything).Return([]models.Appointment{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}
