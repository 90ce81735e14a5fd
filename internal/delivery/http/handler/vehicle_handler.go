package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-marketplace/internal/usecase/vehicle"
	"freight-marketplace/pkg/utils"
)

type VehicleHandler struct {
	service *vehicle.Service
}

func NewVehicleHandler(service *vehicle.Service) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) RegisterRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehicle")
	{
		vehicles.POST("/register", h.Register)
		vehicles.GET("/all", h.List)
	}
}

func (h *VehicleHandler) Register(c *gin.Context) {
	var req vehicle.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	transporterID, _, companyName, ok := sessionIdentity(c)
	if !ok {
		return
	}

	result, err := h.service.Register(c.Request.Context(), transporterID, companyName, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered successfully", result)
}

func (h *VehicleHandler) List(c *gin.Context) {
	transporterID, _, _, ok := sessionIdentity(c)
	if !ok {
		return
	}

	result, err := h.service.ListByTransporter(c.Request.Context(), transporterID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessListResponse(c, http.StatusOK, "Vehicles fetched successfully", len(result), result)
}
