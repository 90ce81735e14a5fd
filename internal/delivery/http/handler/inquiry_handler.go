package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-marketplace/internal/usecase/inquiry"
	"freight-marketplace/pkg/utils"
)

type InquiryHandler struct {
	service *inquiry.Service
}

func NewInquiryHandler(service *inquiry.Service) *InquiryHandler {
	return &InquiryHandler{service: service}
}

func (h *InquiryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/inquiry", h.Submit)
}

func (h *InquiryHandler) Submit(c *gin.Context) {
	var form map[string]any
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Submit(c.Request.Context(), form)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Inquiry added to Excel and emailed successfully", result)
}
