package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/turki-wellness/TURKI-BookingService/internal/usecase/create_booking"
	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

type stubUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"customerName":  "Budi Santoso",
		"customerPhone": "081234567890",
		"branchId":      "pondok-kelapa",
		"serviceId":     "pk-refleksi-90",
		"date":          "2026-09-15",
		"startTime":     "10:00",
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:              "b-1",
		CustomerName:    "Budi Santoso",
		CustomerPhone:   "081234567890",
		BranchID:        "pondok-kelapa",
		ServiceID:       "pk-refleksi-90",
		ServiceName:     "Refleksi 90 Menit",
		TotalPrice:      104000,
		Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("11:30"),
		DurationMinutes: 90,
		Status:          "pending",
		CreatedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		BranchName:      "T.U.R.K.I Pondok Kelapa",
		BranchWhatsApp:  "6287777345077",
	}}
	h := NewHandler(uc, noopLogger{})

	rec := doRequest(t, h, validBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "b-1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-09-15", resp.Date)
	assert.Equal(t, "11:30", resp.EndTime)

	// Ответ несет готовое WhatsApp-подтверждение
	assert.Contains(t, resp.WhatsappMessage, "Refleksi 90 Menit")
	assert.Contains(t, resp.WhatsappMessage, "Rp 104.000")
	assert.Contains(t, resp.WhatsappLink, "https://wa.me/6287777345077?text=")

	// Дата и время распарсены в модель use case
	require.NotNil(t, uc.got)
	assert.Equal(t, "10:00", uc.got.StartTime.String())
	assert.Equal(t, 15, uc.got.Date.Day())
}

func TestHandle_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"slot conflict", createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"branch not found", createBooking.ErrBranchNotFound, http.StatusNotFound},
		{"service not found", createBooking.ErrServiceNotFound, http.StatusNotFound},
		{"service not at branch", createBooking.ErrServiceNotAtBranch, http.StatusBadRequest},
		{"past date", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"outside hours", createBooking.ErrOutsideOperatingHours, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, noopLogger{})
			rec := doRequest(t, h, validBody())
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_BadRequestBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDateAndTime(t *testing.T) {
	h := NewHandler(&stubUseCase{}, noopLogger{})

	body := validBody()
	body["date"] = "15-09-2026"
	rec := doRequest(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = validBody()
	body["startTime"] = "10.00"
	rec = doRequest(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
