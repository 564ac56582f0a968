package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Domenick1991/departures/internal/domain"
	"github.com/Domenick1991/departures/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Board(ctx context.Context) (*domain.DepartureBoard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepartureBoard), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) AddFlight(ctx context.Context, input flights.AddFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) UpdateStatus(ctx context.Context, id string, status domain.FlightStatus) (*domain.Flight, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) AlertPassengers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFlightUseCase) Departures(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockFlightUseCase) Diagnostics(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func serve(t *testing.T, svc flights.FlightUseCase, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	NewRouter(svc).ServeHTTP(w, req)
	return w
}

func TestFlightHandler_board(t *testing.T) {
	mockService := &MockFlightUseCase{}
	board := domain.NewDepartureBoard(domain.Airport{City: "Texas"},
		domain.Flight{ID: "f-1", Airline: "Delta", Destination: "New York", FlightNumber: "D228", Status: domain.FlightStatusEnRoute},
	)
	mockService.On("Board", mock.Anything).Return(board, nil)

	w := serve(t, mockService, http.MethodGet, "/departures", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp boardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Texas", resp.Airport.City)
	assert.Equal(t, board.Flights(), resp.Flights)
}

func TestFlightHandler_board_Error(t *testing.T) {
	mockService := &MockFlightUseCase{}
	mockService.On("Board", mock.Anything).Return(nil, errors.New("database error"))

	w := serve(t, mockService, http.MethodGet, "/departures", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFlightHandler_departures(t *testing.T) {
	mockService := &MockFlightUseCase{}
	line := "Destination: Chicago Airline: American Airlines Flight: AA4456 Departure Time:  Terminal:  Status: Canceled\n"
	mockService.On("Departures", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		_, _ = io.WriteString(args.Get(1).(io.Writer), line)
	}).Return(nil)

	w := serve(t, mockService, http.MethodGet, "/departures/text", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, line, w.Body.String())
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
}

func TestFlightHandler_diagnostics(t *testing.T) {
	mockService := &MockFlightUseCase{}
	mockService.On("Diagnostics", mock.Anything, mock.Anything).Return(errors.New("database error"))

	w := serve(t, mockService, http.MethodGet, "/departures/debug", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFlightHandler_create(t *testing.T) {
	mockService := &MockFlightUseCase{}
	created := &domain.Flight{ID: "f-9", Airline: "KLM", Destination: "Boston", FlightNumber: "KL 6966", Status: domain.FlightStatusScheduled}
	mockService.On("AddFlight", mock.Anything, flights.AddFlightInput{
		Airline: "KLM", Destination: "Boston", FlightNumber: "KL 6966", Status: "Scheduled",
	}).Return(created, nil)

	body := bytes.NewBufferString(`{"airline":"KLM","destination":"Boston","flight_number":"KL 6966","status":"Scheduled"}`)
	w := serve(t, mockService, http.MethodPost, "/flights", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"f-9"`)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_create_Invalid(t *testing.T) {
	mockService := &MockFlightUseCase{}
	mockService.On("AddFlight", mock.Anything, mock.Anything).Return(nil, domain.ErrUnknownStatus)

	w := serve(t, mockService, http.MethodPost, "/flights", bytes.NewBufferString(`{"status":"Landed"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(t, mockService, http.MethodPost, "/flights", bytes.NewBufferString(`{`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	flight := &domain.Flight{ID: "f-1", Destination: "New York", Status: domain.FlightStatusEnRoute}
	mockService.On("GetByID", mock.Anything, "f-1").Return(flight, nil)
	mockService.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrFlightNotFound)

	w := serve(t, mockService, http.MethodGet, "/flights/f-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, mockService, http.MethodGet, "/flights/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlightHandler_updateStatus(t *testing.T) {
	mockService := &MockFlightUseCase{}
	updated := &domain.Flight{ID: "f-1", Status: domain.FlightStatusEnRoute}
	mockService.On("UpdateStatus", mock.Anything, "f-1", domain.FlightStatusEnRoute).Return(updated, nil)

	w := serve(t, mockService, http.MethodPatch, "/flights/f-1/status", bytes.NewBufferString(`{"status":"En Route"}`))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(t, mockService, http.MethodPatch, "/flights/f-1/status", bytes.NewBufferString(`{"status":"Landed"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	mockService.AssertNumberOfCalls(t, "UpdateStatus", 1)
}

func TestFlightHandler_alert(t *testing.T) {
	mockService := &MockFlightUseCase{}
	alerts := []string{"Your flight to New York is En Route"}
	mockService.On("AlertPassengers", mock.Anything).Return(alerts, nil)

	w := serve(t, mockService, http.MethodPost, "/alerts", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Alerts []string `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, alerts, resp.Alerts)
}
