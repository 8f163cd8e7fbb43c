package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/bookings"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/bookings/models"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func patch(h *Handler, id, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+id+"/status", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_Confirmed(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("UpdateStatus", mock.Anything, id, &models.UpdateStatusRequest{Status: "confirmed"}).
		Return(&models.BookingResponse{ID: id.String(), Status: "confirmed"}, nil)

	rec := patch(NewHandler(svc, logger.NewNop()), id.String(), `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"confirmed"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		body   string
		svcErr error
		status int
		code   string
	}{
		{"bad id", "42", `{"status":"confirmed"}`, nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown status", uuid.NewString(), `{"status":"archived"}`, nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", uuid.NewString(), `{"status":"confirmed"}`, bookings.ErrBookingNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"terminal", uuid.NewString(), `{"status":"pending"}`, fmt.Errorf("%w: completed -> pending", bookings.ErrInvalidStatusTransition), http.StatusConflict, "INVALID_STATUS_TRANSITION"},
		{"store", uuid.NewString(), `{"status":"cancelled"}`, fmt.Errorf("%w: down", bookings.ErrStore), http.StatusServiceUnavailable, "STORE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.svcErr != nil {
				svc.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := patch(NewHandler(svc, logger.NewNop()), tt.id, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}
