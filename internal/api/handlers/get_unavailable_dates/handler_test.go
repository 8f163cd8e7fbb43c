package get_unavailable_dates

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	getUnavailableDates "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/get_unavailable_dates"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getUnavailableDates.Request) (*getUnavailableDates.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getUnavailableDates.Response)
	return resp, args.Error(1)
}

func TestHandle_ReturnsDates(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getUnavailableDates.Request{Year: 2026, Month: 2}).
		Return(&getUnavailableDates.Response{Year: 2026, Month: 2, Dates: []string{"2026-02-14", "2026-02-20"}}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability/unavailable-dates?year=2026&month=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"OK","data":{"year":2026,"month":2,"dates":["2026-02-14","2026-02-20"]}}`, rec.Body.String())
}

func TestHandle_EmptyMonthIsEmptyArray(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getUnavailableDates.Response{Year: 2026, Month: 3}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/?year=2026&month=3", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dates":[]`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		ucErr  error
		status int
		code   string
	}{
		{"non-numeric year", "year=abc&month=2", nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"missing month", "year=2026", nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"month out of range", "year=2026&month=13", getUnavailableDates.ErrInvalidInput, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"store down", "year=2026&month=2", fmt.Errorf("%w: boom", getUnavailableDates.ErrStore), http.StatusServiceUnavailable, "STORE_ERROR"},
		{"unexpected", "year=2026&month=2", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}
