package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-marketplace/internal/usecase/shipment"
	"freight-marketplace/pkg/utils"
)

type ShipmentHandler struct {
	service *shipment.Service
}

func NewShipmentHandler(service *shipment.Service) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/shipment")
	{
		shipments.POST("/create", h.Create)
		shipments.GET("/all", h.List)
	}
}

func (h *ShipmentHandler) Create(c *gin.Context) {
	var req shipment.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	shipperID, _, _, ok := sessionIdentity(c)
	if !ok {
		return
	}

	result, err := h.service.Create(c.Request.Context(), shipperID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Shipment created successfully", result)
}

func (h *ShipmentHandler) List(c *gin.Context) {
	shipperID, _, _, ok := sessionIdentity(c)
	if !ok {
		return
	}

	result, err := h.service.ListByShipper(c.Request.Context(), shipperID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessListResponse(c, http.StatusOK, "Shipments fetched successfully", len(result), result)
}
