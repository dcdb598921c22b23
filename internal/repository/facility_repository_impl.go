package repository

import (
	"errors"

	"washmap-api/internal/domain/entity"
	domainRepo "washmap-api/internal/domain/repository"
	"washmap-api/internal/infrastructure/memstore"
)

// ErrFacilityMissing is returned when a write targets an unknown facility
var ErrFacilityMissing = errors.New("facility missing from store")

type facilityRepository struct{}

func NewFacilityRepository() domainRepo.FacilityRepository {
	return &facilityRepository{}
}

func (r *facilityRepository) FindAll(tx *memstore.Tx) ([]entity.Facility, error) {
	return tx.Facilities(), nil
}

func (r *facilityRepository) FindByID(tx *memstore.Tx, id string) (*entity.Facility, error) {
	facility, ok := tx.Facility(id)
	if !ok {
		return nil, nil
	}
	return &facility, nil
}

func (r *facilityRepository) IncrementQueueCount(tx *memstore.Tx, id string) error {
	ok, err := tx.ModifyFacility(id, func(f *entity.Facility) {
		f.IncrementQueue()
	})
	if err != nil {
		return err
	}
	if !ok {
		return ErrFacilityMissing
	}
	return nil
}
