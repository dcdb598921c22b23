package http

import (
	"net/http"

	"washmap-api/internal/delivery/http/handler"
	"washmap-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	facilityHandler   *handler.FacilityHandler
	bookingHandler    *handler.BookingHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	facilityHandler *handler.FacilityHandler,
	bookingHandler *handler.BookingHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		facilityHandler:   facilityHandler,
		bookingHandler:    bookingHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

// Setup registers the routes and returns the router wrapped in CORS and
// request logging. The wrapping is outside mux so unmatched routes are
// logged and get CORS headers too.
func (r *Router) Setup() http.Handler {
	// Health check
	r.router.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	// Facility routes
	r.router.HandleFunc("/api/facilities", r.facilityHandler.GetFacilities).Methods(http.MethodGet)
	r.router.HandleFunc("/api/facilities/{id}", r.facilityHandler.GetFacility).Methods(http.MethodGet)

	// Booking routes
	r.router.HandleFunc("/api/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	r.router.HandleFunc("/api/bookings/{userId}", r.bookingHandler.GetUserBookings).Methods(http.MethodGet)

	notFound := http.HandlerFunc(handler.RouteNotFound)
	r.router.NotFoundHandler = notFound
	r.router.MethodNotAllowedHandler = notFound

	return r.corsMiddleware.Handle(r.loggingMiddleware.Handle(r.router))
}
