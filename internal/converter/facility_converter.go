package converter

import (
	"fmt"

	"washmap-api/internal/delivery/dto"
	"washmap-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// FacilityToResponse converts a Facility entity to FacilityResponse DTO.
// Queue status is derived with the given thresholds.
func FacilityToResponse(facility *entity.Facility, thresholds entity.QueueThresholds) *dto.FacilityResponse {
	if facility == nil {
		return nil
	}

	reviews := make([]dto.ReviewResponse, len(facility.Reviews))
	for i, r := range facility.Reviews {
		reviews[i] = dto.ReviewResponse{User: r.User, Rating: r.Rating, Comment: r.Comment}
	}

	services := make([]dto.ServiceResponse, len(facility.Services))
	for i, s := range facility.Services {
		services[i] = dto.ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price, Duration: s.Duration}
	}

	return &dto.FacilityResponse{
		ID:           facility.ID,
		Name:         facility.Name,
		Latitude:     facility.Latitude,
		Longitude:    facility.Longitude,
		Address:      facility.Address,
		QueueCount:   facility.QueueCount,
		Rating:       facility.Rating,
		TotalReviews: facility.TotalReviews,
		Reviews:      reviews,
		Services:     services,
		QueueStatus:  QueueStatusToResponse(thresholds.Classify(facility.QueueCount)),
		PriceRange:   PriceRange(facility.Services),
	}
}

// FacilitiesToResponses converts a slice of Facility entities to slice of FacilityResponse DTOs
func FacilitiesToResponses(facilities []entity.Facility, thresholds entity.QueueThresholds) []dto.FacilityResponse {
	responses := make([]dto.FacilityResponse, len(facilities))
	for i := range facilities {
		responses[i] = *FacilityToResponse(&facilities[i], thresholds)
	}
	return responses
}

func QueueStatusToResponse(status entity.QueueStatus) dto.QueueStatusResponse {
	return dto.QueueStatusResponse{
		Tier:  string(status.Tier),
		Label: status.Label,
		Color: status.Color,
		Icon:  status.Icon,
	}
}

// PriceRange formats the cheapest and dearest service, e.g. "$20 - $60"
func PriceRange(services []entity.Service) string {
	if len(services) == 0 {
		return "N/A"
	}

	lo := decimal.NewFromFloat(services[0].Price)
	hi := lo
	for _, s := range services[1:] {
		p := decimal.NewFromFloat(s.Price)
		lo = decimal.Min(lo, p)
		hi = decimal.Max(hi, p)
	}

	if lo.Equal(hi) {
		return "$" + lo.String()
	}
	return fmt.Sprintf("$%s - $%s", lo.String(), hi.String())
}
