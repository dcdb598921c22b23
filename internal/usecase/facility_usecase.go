package usecase

import (
	"context"

	"washmap-api/internal/converter"
	"washmap-api/internal/delivery/dto"
	"washmap-api/internal/domain/entity"
	"washmap-api/internal/domain/repository"
	"washmap-api/internal/infrastructure/memstore"
	"washmap-api/internal/service"

	"github.com/sirupsen/logrus"
)

type FacilityUsecase interface {
	ListFacilities(ctx context.Context, center *entity.Coordinate) ([]dto.FacilityResponse, error)
	GetFacility(ctx context.Context, id string) (*dto.FacilityResponse, error)
}

type facilityUsecase struct {
	store        *memstore.Store
	log          *logrus.Logger
	facilityRepo repository.FacilityRepository
	generator    *service.FacilityGenerator
	thresholds   entity.QueueThresholds
}

func NewFacilityUsecase(
	store *memstore.Store,
	log *logrus.Logger,
	facilityRepo repository.FacilityRepository,
	generator *service.FacilityGenerator,
	thresholds entity.QueueThresholds,
) FacilityUsecase {
	return &facilityUsecase{
		store:        store,
		log:          log,
		facilityRepo: facilityRepo,
		generator:    generator,
		thresholds:   thresholds,
	}
}

// ListFacilities returns generated facilities around center when it is given
// and finite, otherwise the static catalog. Generated facilities are not stored.
func (u *facilityUsecase) ListFacilities(ctx context.Context, center *entity.Coordinate) ([]dto.FacilityResponse, error) {
	if center != nil && center.IsFinite() {
		u.log.Infof("Generating facilities around (%f, %f)", center.Latitude, center.Longitude)
		facilities := u.generator.Generate(*center)
		return converter.FacilitiesToResponses(facilities, u.thresholds), nil
	}

	var facilities []entity.Facility
	err := u.store.View(func(tx *memstore.Tx) error {
		var err error
		facilities, err = u.facilityRepo.FindAll(tx)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to list facilities: %+v", err)
		return nil, err
	}

	u.log.Debug("Returning default facilities")
	return converter.FacilitiesToResponses(facilities, u.thresholds), nil
}

// GetFacility looks up the static catalog only
func (u *facilityUsecase) GetFacility(ctx context.Context, id string) (*dto.FacilityResponse, error) {
	var facility *entity.Facility
	err := u.store.View(func(tx *memstore.Tx) error {
		var err error
		facility, err = u.facilityRepo.FindByID(tx, id)
		return err
	})
	if err != nil {
		u.log.Warnf("Failed to find facility %s: %+v", id, err)
		return nil, err
	}
	if facility == nil {
		return nil, ErrFacilityNotFound
	}

	return converter.FacilityToResponse(facility, u.thresholds), nil
}
