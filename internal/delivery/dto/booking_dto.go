package dto

import (
	"time"
)

// Request DTOs

// CreateBookingRequest is the body of POST /api/bookings. ServiceID is
// accepted but not required.
type CreateBookingRequest struct {
	UserID      string `json:"userId" validate:"required"`
	FacilityID  string `json:"facilityId" validate:"required"`
	ServiceName string `json:"serviceName" validate:"required"`
	ServiceID   string `json:"serviceId"`
	Time        string `json:"time" validate:"required"`
}

// Response DTOs

type BookingResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	FacilityID   string    `json:"facilityId"`
	FacilityName string    `json:"facilityName"`
	ServiceName  string    `json:"serviceName"`
	ServiceID    string    `json:"serviceId,omitempty"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
