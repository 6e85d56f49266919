package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/lifedash/internal/core/ports/services"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/gin-gonic/gin"
)

type vehicleHandler struct {
	garageService portssvc.GarageSvcFacade
}

func registerVehicleRoutes(rg *gin.RouterGroup, garageService portssvc.GarageSvcFacade) {
	h := &vehicleHandler{garageService: garageService}

	vehicles := rg.Group("/vehicles")
	{
		vehicles.GET("", h.listVehicles)
		vehicles.POST("", h.createVehicle)
		vehicles.POST("/logs", h.addFuelLog)
	}
}

func (h *vehicleHandler) listVehicles(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	vehicles, err := h.garageService.ListVehicles(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list vehicles")
		return
	}
	res := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		res[i] = dto.ToVehicleResponse(&vehicles[i])
	}
	respondData(c, http.StatusOK, res)
}

func (h *vehicleHandler) createVehicle(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateVehicleRequest
	if !bindJSON(c, &req) {
		return
	}
	v, err := h.garageService.CreateVehicle(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create vehicle")
		return
	}
	respondData(c, http.StatusCreated, dto.ToVehicleResponse(v))
}

// addFuelLog records a refuel, posting the expense when an account is given.
func (h *vehicleHandler) addFuelLog(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateFuelLogRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := h.garageService.AddFuelLog(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to add fuel log")
		return
	}
	respondData(c, http.StatusCreated, entry)
}
