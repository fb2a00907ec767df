package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/turki-wellness/TURKI-BookingService/internal/domain"
	catalogStore "github.com/turki-wellness/TURKI-BookingService/internal/infra/catalog"
	"github.com/turki-wellness/TURKI-BookingService/pkg/types"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByBranchAndDate(ctx context.Context, branchID string, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, branchID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) GetBranch(branchID string) (domain.Branch, error) {
	args := m.Called(branchID)
	return args.Get(0).(domain.Branch), args.Error(1)
}

func (m *MockCatalogProvider) GetService(serviceID string) (domain.Service, error) {
	args := m.Called(serviceID)
	return args.Get(0).(domain.Service), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var (
	testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	testBranch = domain.Branch{
		ID:   "depok",
		Name: "T.U.R.K.I Depok",
	}

	testService = domain.Service{
		ID:              "dp-refleksi-60",
		BranchID:        "depok",
		Category:        domain.CategoryRefleksi,
		Name:            "Refleksi 60 Menit",
		DurationMinutes: 60,
		DiscountPrice:   76000,
	}

	testSchedule = Schedule{
		OperatingStart:      domain.DefaultOperatingStart,
		OperatingEnd:        domain.DefaultOperatingEnd,
		SlotIntervalMinutes: domain.DefaultSlotIntervalMinutes,
	}
)

func slotsByTime(t *testing.T, slots []domain.TimeSlot) map[string]bool {
	t.Helper()
	m := make(map[string]bool, len(slots))
	for _, s := range slots {
		m[s.Time.String()] = s.Available
	}
	return m
}

func validRequest() *Request {
	return &Request{
		BranchID:  "depok",
		ServiceID: "dp-refleksi-60",
		Date:      testDate,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	catalog := new(MockCatalogProvider)
	uc := NewUseCase(repo, catalog, testSchedule, noopLogger{})

	catalog.On("GetBranch", "depok").Return(testBranch, nil)
	catalog.On("GetService", "dp-refleksi-60").Return(testService, nil)
	repo.On("GetByBranchAndDate", mock.Anything, "depok", testDate).
		Return([]*domain.Booking{{
			StartTime: types.TimeString("10:00"),
			EndTime:   types.TimeString("11:30"),
			Status:    domain.StatusConfirmed,
		}}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "depok", resp.BranchID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 27)

	avail := slotsByTime(t, resp.Slots)
	assert.True(t, avail["09:00"])
	assert.False(t, avail["09:30"], "would run into the 10:00 booking")
	assert.False(t, avail["11:00"], "whole interval check, not just the start")
	assert.True(t, avail["11:30"], "back-to-back start at booking end")
	assert.False(t, avail["21:30"], "would end past closing")
	assert.False(t, avail["22:00"])
}

// Ошибка чтения бронирований деградирует до пустого набора:
// лучше показать оптимистичную сетку, чем уронить выдачу слотов
func TestExecute_RepositoryErrorDegradesToEmpty(t *testing.T) {
	repo := new(MockBookingRepository)
	catalog := new(MockCatalogProvider)
	uc := NewUseCase(repo, catalog, testSchedule, noopLogger{})

	catalog.On("GetBranch", "depok").Return(testBranch, nil)
	catalog.On("GetService", "dp-refleksi-60").Return(testService, nil)
	repo.On("GetByBranchAndDate", mock.Anything, "depok", testDate).
		Return(nil, errors.New("connection refused"))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	avail := slotsByTime(t, resp.Slots)
	assert.True(t, avail["10:00"], "no bookings visible, slot offered")
	assert.False(t, avail["21:30"], "closing-time check still applies")
}

func TestExecute_BranchNotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	catalog := new(MockCatalogProvider)
	uc := NewUseCase(repo, catalog, testSchedule, noopLogger{})

	catalog.On("GetBranch", "missing").
		Return(domain.Branch{}, catalogStore.ErrBranchNotFound)

	req := validRequest()
	req.BranchID = "missing"

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	catalog := new(MockCatalogProvider)
	uc := NewUseCase(repo, catalog, testSchedule, noopLogger{})

	catalog.On("GetBranch", "depok").Return(testBranch, nil)
	catalog.On("GetService", "dp-refleksi-60").
		Return(domain.Service{}, catalogStore.ErrServiceNotFound)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_ServiceFromAnotherBranch(t *testing.T) {
	repo := new(MockBookingRepository)
	catalog := new(MockCatalogProvider)
	uc := NewUseCase(repo, catalog, testSchedule, noopLogger{})

	otherBranchService := testService
	otherBranchService.BranchID = "bekasi"

	catalog.On("GetBranch", "depok").Return(testBranch, nil)
	catalog.On("GetService", "dp-refleksi-60").Return(otherBranchService, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceNotAtBranch)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"missing branch", func(req *Request) { req.BranchID = "" }},
		{"missing service", func(req *Request) { req.ServiceID = "" }},
		{"missing date", func(req *Request) { req.Date = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockBookingRepository)
			catalog := new(MockCatalogProvider)
			uc := NewUseCase(repo, catalog, testSchedule, noopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
