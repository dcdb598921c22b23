package handler

import (
	"net/http"

	"washmap-api/pkg/response"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, HealthResponse{
		Status:  "OK",
		Message: "WashMap API is running",
	})
}

// RouteNotFound answers unmatched paths and unsupported methods alike
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	response.NotFound(w, "Route not found")
}
