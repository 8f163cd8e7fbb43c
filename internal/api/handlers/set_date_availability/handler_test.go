package set_date_availability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/availability"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/availability/models"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/logger"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Set(ctx context.Context, date time.Time, req *models.SetAvailabilityRequest) (*models.DateAvailabilityResponse, error) {
	args := m.Called(ctx, date, req)
	resp, _ := args.Get(0).(*models.DateAvailabilityResponse)
	return resp, args.Error(1)
}

func put(h *Handler, date, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPut, "/api/v1/admin/availability/"+date, strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"date": date})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_MarkUnavailable(t *testing.T) {
	date := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("Set", mock.Anything, date, &models.SetAvailabilityRequest{Unavailable: true, Reason: ptr.Ptr("Festival")}).
		Return(&models.DateAvailabilityResponse{Date: "2026-02-14", Unavailable: true, Reason: ptr.Ptr("Festival"), Explicit: true}, nil)

	rec := put(NewHandler(svc, logger.NewNop()), "2026-02-14", `{"unavailable":true,"reason":"Festival"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgMarkedUnavailable)
	assert.Contains(t, rec.Body.String(), `"reason":"Festival"`)
	svc.AssertExpectations(t)
}

func TestHandle_MarkAvailable(t *testing.T) {
	svc := &mockService{}
	svc.On("Set", mock.Anything, mock.Anything, &models.SetAvailabilityRequest{Unavailable: false}).
		Return(&models.DateAvailabilityResponse{Date: "2026-02-14", Explicit: true}, nil)

	rec := put(NewHandler(svc, logger.NewNop()), "2026-02-14", `{"unavailable":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgMarkedAvailable)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		body   string
		svcErr error
		status int
	}{
		{"bad date", "2026-02-30", `{"unavailable":true}`, nil, http.StatusBadRequest},
		{"reason too long", "2026-02-14", fmt.Sprintf(`{"unavailable":true,"reason":%q}`, strings.Repeat("x", 501)), nil, http.StatusBadRequest},
		{"service validation", "2026-02-14", `{"unavailable":true,"reason":"   "}`, availability.ErrInvalidInput, http.StatusBadRequest},
		{"store", "2026-02-14", `{"unavailable":true}`, fmt.Errorf("%w: down", availability.ErrStore), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.svcErr != nil {
				svc.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := put(NewHandler(svc, logger.NewNop()), tt.date, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
