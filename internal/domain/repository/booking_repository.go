package repository

import (
	"washmap-api/internal/domain/entity"
	"washmap-api/internal/infrastructure/memstore"
)

type BookingRepository interface {
	Create(tx *memstore.Tx, booking *entity.Booking) error
	FindByUserID(tx *memstore.Tx, userID string) ([]entity.Booking, error)
}
