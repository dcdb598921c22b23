package repository

import (
	"washmap-api/internal/domain/entity"
	"washmap-api/internal/infrastructure/memstore"
)

type FacilityRepository interface {
	FindAll(tx *memstore.Tx) ([]entity.Facility, error)
	FindByID(tx *memstore.Tx, id string) (*entity.Facility, error)
	IncrementQueueCount(tx *memstore.Tx, id string) error
}
