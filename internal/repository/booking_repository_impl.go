package repository

import (
	"washmap-api/internal/domain/entity"
	domainRepo "washmap-api/internal/domain/repository"
	"washmap-api/internal/infrastructure/memstore"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(tx *memstore.Tx, booking *entity.Booking) error {
	return tx.AppendBooking(*booking)
}

// FindByUserID returns the user's bookings in creation order
func (r *bookingRepository) FindByUserID(tx *memstore.Tx, userID string) ([]entity.Booking, error) {
	return tx.Bookings(func(b *entity.Booking) bool {
		return b.UserID == userID
	}), nil
}
