package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"washmap-api/internal/domain/entity"
	"washmap-api/internal/usecase"
	"washmap-api/pkg/response"

	"github.com/gorilla/mux"
)

type FacilityHandler struct {
	facilityUsecase usecase.FacilityUsecase
}

func NewFacilityHandler(facilityUsecase usecase.FacilityUsecase) *FacilityHandler {
	return &FacilityHandler{
		facilityUsecase: facilityUsecase,
	}
}

// GetFacilities lists the static catalog, or generated facilities when both
// lat and lng are given.
func (h *FacilityHandler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	center, ok := parseCenter(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "", "Invalid latitude or longitude")
		return
	}

	facilities, err := h.facilityUsecase.ListFacilities(r.Context(), center)
	if err != nil {
		response.InternalServerError(w, "Failed to get facilities")
		return
	}

	response.List(w, facilities, len(facilities))
}

func (h *FacilityHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	facility, err := h.facilityUsecase.GetFacility(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrFacilityNotFound) {
			response.NotFound(w, "Facility not found")
			return
		}
		response.InternalServerError(w, "Failed to get facility")
		return
	}

	response.Success(w, http.StatusOK, "", facility)
}

// parseCenter returns nil, true when lat or lng is absent. Values must parse
// as finite floats.
func parseCenter(r *http.Request) (*entity.Coordinate, bool) {
	query := r.URL.Query()
	latRaw := strings.TrimSpace(query.Get("lat"))
	lngRaw := strings.TrimSpace(query.Get("lng"))
	if latRaw == "" || lngRaw == "" {
		return nil, true
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, false
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil, false
	}

	center := entity.Coordinate{Latitude: lat, Longitude: lng}
	if !center.IsFinite() {
		return nil, false
	}
	return &center, true
}
