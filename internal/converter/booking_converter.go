package converter

import (
	"washmap-api/internal/delivery/dto"
	"washmap-api/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:           booking.ID,
		UserID:       booking.UserID,
		FacilityID:   booking.FacilityID,
		FacilityName: booking.FacilityName,
		ServiceName:  booking.ServiceName,
		ServiceID:    booking.ServiceID,
		Time:         booking.Time,
		Status:       string(booking.Status),
		CreatedAt:    booking.CreatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
