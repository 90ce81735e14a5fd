package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-marketplace/internal/usecase/driver"
	"freight-marketplace/pkg/utils"
)

type DriverHandler struct {
	service *driver.Service
}

func NewDriverHandler(service *driver.Service) *DriverHandler {
	return &DriverHandler{service: service}
}

func (h *DriverHandler) RegisterRoutes(router *gin.RouterGroup) {
	drivers := router.Group("/driver")
	{
		drivers.POST("/register", h.Register)
		drivers.GET("/all", h.List)
	}
}

// Register takes a multipart form: text fields plus an optional photo part.
func (h *DriverHandler) Register(c *gin.Context) {
	req := driver.RegisterRequest{
		DriverName:    c.PostForm("driverName"),
		PhoneNumber:   c.PostForm("phoneNumber"),
		VehicleNumber: c.PostForm("vehicleNumber"),
		Aadhaar:       c.PostForm("aadhaar"),
		License:       c.PostForm("license"),
	}

	if fileHeader, err := c.FormFile("photo"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Unable to read photo")
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Unable to read photo")
			return
		}

		req.PhotoName = fileHeader.Filename
		req.PhotoContent = content
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

	utils.SuccessResponse(c, http.StatusCreated, "Driver registered successfully", result)
}

func (h *DriverHandler) List(c *gin.Context) {
	transporterID, _, _, ok := sessionIdentity(c)
	if !ok {
		return
	}

	result, err := h.service.ListByTransporter(c.Request.Context(), transporterID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessListResponse(c, http.StatusOK, "Drivers fetched successfully", len(result), result)
}
