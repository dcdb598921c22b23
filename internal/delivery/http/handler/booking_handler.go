package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"washmap-api/internal/delivery/dto"
	"washmap-api/internal/usecase"
	"washmap-api/pkg/response"

	"github.com/gorilla/mux"
)

const missingFieldsMessage = "Missing required fields: userId, facilityId, serviceName, time"

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		var validationErr *usecase.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.Error(w, http.StatusBadRequest, missingFieldsMessage, validationErr.Fields)
		case errors.Is(err, usecase.ErrFacilityNotFound):
			response.NotFound(w, "Facility not found")
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	bookings, err := h.bookingUsecase.GetUserBookings(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.List(w, bookings, len(bookings))
}
