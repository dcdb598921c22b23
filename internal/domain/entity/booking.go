package entity

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

// Bookings are confirmed on creation; there is no cancellation path.
const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a user's reservation of a service at a facility
type Booking struct {
	ID           string
	UserID       string
	FacilityID   string
	FacilityName string
	ServiceName  string
	ServiceID    string
	Time         string
	Status       BookingStatus
	CreatedAt    time.Time
}

// IsConfirmed checks if booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}

// Confirm changes booking status to confirmed
func (b *Booking) Confirm() {
	b.Status = BookingStatusConfirmed
}
