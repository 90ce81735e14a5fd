package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-marketplace/internal/usecase/consignment"
	"freight-marketplace/pkg/utils"
)

type ConsignmentHandler struct {
	service *consignment.Service
}

func NewConsignmentHandler(service *consignment.Service) *ConsignmentHandler {
	return &ConsignmentHandler{service: service}
}

func (h *ConsignmentHandler) RegisterTransporterRoutes(router *gin.RouterGroup) {
	router.POST("/consignment/create", h.Create)
}

func (h *ConsignmentHandler) RegisterSessionRoutes(router *gin.RouterGroup) {
	consignments := router.Group("/consignment")
	{
		consignments.GET("/all", h.All)
		consignments.GET("/status/:status", h.ByStatus)
	}
}

func (h *ConsignmentHandler) Create(c *gin.Context) {
	var req consignment.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	transporterID, _, _, ok := sessionIdentity(c)
	if !ok {
		return
	}

	result, err := h.service.Create(c.Request.Context(), transporterID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Consignment created successfully", result)
}

func (h *ConsignmentHandler) All(c *gin.Context) {
	result, err := h.service.All(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessListResponse(c, http.StatusOK, "Consignments fetched successfully", len(result), result)
}

func (h *ConsignmentHandler) ByStatus(c *gin.Context) {
	result, err := h.service.ByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessListResponse(c, http.StatusOK, "Consignments fetched successfully", len(result), result)
}
