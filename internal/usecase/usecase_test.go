package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"washmap-api/config"
	"washmap-api/internal/delivery/dto"
	"washmap-api/internal/domain/entity"
	"washmap-api/internal/infrastructure/memstore"
	"washmap-api/internal/repository"
	"washmap-api/internal/service"
	"washmap-api/internal/usecase"
	"washmap-api/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQueueNotifier struct {
	mock.Mock
}

func (m *MockQueueNotifier) IncrQueue(ctx context.Context, facilityID string) error {
	args := m.Called(ctx, facilityID)
	return args.Error(0)
}

func (m *MockQueueNotifier) PublishBookingConfirmed(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type fixture struct {
	facilities usecase.FacilityUsecase
	bookings   usecase.BookingUsecase
	notifier   *MockQueueNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memstore.New(repository.DefaultFacilities())
	facilityRepo := repository.NewFacilityRepository()
	bookingRepo := repository.NewBookingRepository()
	generator := service.NewFacilityGenerator(config.GeneratorConfig{Count: 7, RadiusDeg: 0.045}, service.NewRand(1))
	notifier := new(MockQueueNotifier)

	return &fixture{
		facilities: usecase.NewFacilityUsecase(store, log, facilityRepo, generator, entity.DefaultQueueThresholds()),
		bookings:   usecase.NewBookingUsecase(store, log, validator.NewValidator(), facilityRepo, bookingRepo, notifier),
		notifier:   notifier,
	}
}

func validRequest() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		UserID:      "user-1",
		FacilityID:  "1",
		ServiceName: "Wax & Polish",
		ServiceID:   "s4",
		Time:        "10:00 AM",
	}
}

func (f *fixture) queueCount(t *testing.T, id string) int {
	t.Helper()
	facility, err := f.facilities.GetFacility(context.Background(), id)
	require.NoError(t, err)
	return facility.QueueCount
}

func TestListFacilities_StaticCatalogIsStable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.facilities.ListFacilities(ctx, nil)
	require.NoError(t, err)
	second, err := f.facilities.ListFacilities(ctx, nil)
	require.NoError(t, err)

	require.Len(t, first, 5)
	assert.Equal(t, first, second)
	for i, id := range []string{"1", "2", "3", "4", "5"} {
		assert.Equal(t, id, first[i].ID)
	}
	assert.Equal(t, "low", first[0].QueueStatus.Tier)
	assert.Equal(t, "high", first[1].QueueStatus.Tier)
	assert.Equal(t, "available", first[4].QueueStatus.Tier)
	assert.Equal(t, "$25 - $65", first[0].PriceRange)
}

func TestListFacilities_GeneratesAroundCenter(t *testing.T) {
	f := newFixture(t)

	center := &entity.Coordinate{Latitude: 40.7128, Longitude: -74.006}
	facilities, err := f.facilities.ListFacilities(context.Background(), center)
	require.NoError(t, err)

	require.Len(t, facilities, 7)
	for _, fac := range facilities {
		assert.True(t, strings.HasPrefix(fac.ID, "gen-"))
		assert.InDelta(t, center.Latitude, fac.Latitude, 0.045)
		assert.InDelta(t, center.Longitude, fac.Longitude, 0.045)
	}
}

func TestGetFacility_GeneratedIDsAreNotRetrievable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.facilities.ListFacilities(ctx, &entity.Coordinate{Latitude: 1, Longitude: 2})
	require.NoError(t, err)

	_, err = f.facilities.GetFacility(ctx, "gen-1")
	assert.ErrorIs(t, err, usecase.ErrFacilityNotFound)
}

func TestCreateBooking_RoundTripAndQueueIncrement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.notifier.On("IncrQueue", mock.Anything, "1").Return(nil).Once()
	f.notifier.On("PublishBookingConfirmed", mock.Anything, mock.AnythingOfType("*entity.Booking")).Return(nil).Once()

	before := f.queueCount(t, "1")

	booking, err := f.bookings.CreateBooking(ctx, validRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(booking.ID, "booking_"))
	assert.Equal(t, "Premium Wash & Shine", booking.FacilityName)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, "s4", booking.ServiceID)
	assert.False(t, booking.CreatedAt.IsZero())
	assert.Equal(t, before+1, f.queueCount(t, "1"))

	userBookings, err := f.bookings.GetUserBookings(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, userBookings, 1)
	assert.Equal(t, *booking, userBookings[0])

	f.notifier.AssertExpectations(t)
}

func TestCreateBooking_IDsAreUniqueAndOrdered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.notifier.On("IncrQueue", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("PublishBookingConfirmed", mock.Anything, mock.Anything).Return(nil)

	seen := map[string]bool{}
	var created []string
	for i := 0; i < 20; i++ {
		b, err := f.bookings.CreateBooking(ctx, validRequest())
		require.NoError(t, err)
		assert.False(t, seen[b.ID])
		seen[b.ID] = true
		created = append(created, b.ID)
	}

	bookings, err := f.bookings.GetUserBookings(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 20)
	for i, b := range bookings {
		assert.Equal(t, created[i], b.ID)
	}
	assert.Equal(t, 3+20, f.queueCount(t, "1"))
}

func TestCreateBooking_ServiceIDIsOptional(t *testing.T) {
	f := newFixture(t)
	f.notifier.On("IncrQueue", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("PublishBookingConfirmed", mock.Anything, mock.Anything).Return(nil)

	req := validRequest()
	req.ServiceID = ""

	booking, err := f.bookings.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, booking.ServiceID)
}

func TestCreateBooking_MissingFieldHasNoSideEffects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	before := f.queueCount(t, "1")

	for _, mutate := range []func(r *dto.CreateBookingRequest){
		func(r *dto.CreateBookingRequest) { r.UserID = "" },
		func(r *dto.CreateBookingRequest) { r.FacilityID = "" },
		func(r *dto.CreateBookingRequest) { r.ServiceName = "" },
		func(r *dto.CreateBookingRequest) { r.Time = "" },
	} {
		req := validRequest()
		mutate(req)

		_, err := f.bookings.CreateBooking(ctx, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, usecase.ErrInvalidRequest)

		var verr *usecase.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Fields, 1)
	}

	assert.Equal(t, before, f.queueCount(t, "1"))
	bookings, err := f.bookings.GetUserBookings(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, bookings)
	f.notifier.AssertNotCalled(t, "IncrQueue", mock.Anything, mock.Anything)
}

func TestCreateBooking_UnknownFacilityHasNoSideEffects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := validRequest()
	req.FacilityID = "gen-1"

	_, err := f.bookings.CreateBooking(ctx, req)
	assert.ErrorIs(t, err, usecase.ErrFacilityNotFound)

	bookings, err := f.bookings.GetUserBookings(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, bookings)
	f.notifier.AssertNotCalled(t, "IncrQueue", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "PublishBookingConfirmed", mock.Anything, mock.Anything)
}

func TestCreateBooking_NotifierFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.notifier.On("IncrQueue", mock.Anything, "1").Return(errors.New("redis down"))
	f.notifier.On("PublishBookingConfirmed", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	_, err := f.bookings.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 4, f.queueCount(t, "1"))
}

func TestValidationError_Message(t *testing.T) {
	err := &usecase.ValidationError{Fields: map[string]string{
		"userId": "userId is required",
		"time":   "time is required",
	}}
	assert.Equal(t, "invalid request: time is required, userId is required", err.Error())
}
