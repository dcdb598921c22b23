package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"washmap-api/internal/converter"
	"washmap-api/internal/delivery/dto"
	"washmap-api/internal/domain/entity"
	"washmap-api/internal/domain/repository"
	"washmap-api/internal/infrastructure/memstore"
	"washmap-api/internal/service"
	"washmap-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string) ([]dto.BookingResponse, error)
}

type bookingUsecase struct {
	store         *memstore.Store
	log           *logrus.Logger
	validator     *validator.CustomValidator
	facilityRepo  repository.FacilityRepository
	bookingRepo   repository.BookingRepository
	queueNotifier service.QueueNotifier
	now           func() time.Time
}

func NewBookingUsecase(
	store *memstore.Store,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	facilityRepo repository.FacilityRepository,
	bookingRepo repository.BookingRepository,
	queueNotifier service.QueueNotifier,
) BookingUsecase {
	return &bookingUsecase{
		store:         store,
		log:           log,
		validator:     validator,
		facilityRepo:  facilityRepo,
		bookingRepo:   bookingRepo,
		queueNotifier: queueNotifier,
		now:           time.Now,
	}
}

// CreateBooking records a confirmed booking and adds one to the facility queue.
//
// Flow:
// 1. Validate required fields
// 2. Under the store lock: find facility, append booking, increment queueCount
// 3. Mirror the queue change to Redis (failures are logged, not returned)
//
// Only static catalog facilities can be booked. There is no capacity or
// double-booking check.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, &ValidationError{Fields: u.validator.FormatValidationErrors(err)}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate booking id: %w", err)
	}

	var booking *entity.Booking
	err = u.store.Update(func(tx *memstore.Tx) error {
		facility, err := u.facilityRepo.FindByID(tx, req.FacilityID)
		if err != nil {
			return err
		}
		if facility == nil {
			return ErrFacilityNotFound
		}

		booking = &entity.Booking{
			ID:           "booking_" + id.String(),
			UserID:       req.UserID,
			FacilityID:   facility.ID,
			FacilityName: facility.Name,
			ServiceName:  req.ServiceName,
			ServiceID:    req.ServiceID,
			Time:         req.Time,
			CreatedAt:    u.now().UTC(),
		}
		booking.Confirm()

		if err := u.bookingRepo.Create(tx, booking); err != nil {
			return err
		}
		return u.facilityRepo.IncrementQueueCount(tx, facility.ID)
	})
	if err != nil {
		if !errors.Is(err, ErrFacilityNotFound) {
			u.log.Errorf("Failed to create booking for facility %s: %+v", req.FacilityID, err)
		}
		return nil, err
	}

	if err := u.queueNotifier.IncrQueue(ctx, booking.FacilityID); err != nil {
		u.log.Warnf("Failed to mirror queue count for facility %s (non-fatal): %+v", booking.FacilityID, err)
	}
	if err := u.queueNotifier.PublishBookingConfirmed(ctx, booking); err != nil {
		u.log.Warnf("Failed to publish booking %s (non-fatal): %+v", booking.ID, err)
	}

	u.log.Infof("Booking created: id=%s, user=%s, facility=%s, time=%s", booking.ID, booking.UserID, booking.FacilityID, booking.Time)
	return converter.BookingToResponse(booking), nil
}

// GetUserBookings returns the user's bookings in creation order
func (u *bookingUsecase) GetUserBookings(ctx context.Context, userID string) ([]dto.BookingResponse, error) {
	var bookings []entity.Booking
	err := u.store.View(func(tx *memstore.Tx) error {
		var err error
		bookings, err = u.bookingRepo.FindByUserID(tx, userID)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to find bookings for user %s: %+v", userID, err)
		return nil, err
	}

	return converter.BookingsToResponses(bookings), nil
}
