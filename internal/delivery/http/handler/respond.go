package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-marketplace/internal/domain/account"
	"freight-marketplace/internal/domain/fleet"
	"freight-marketplace/internal/domain/shipment"
	appErrors "freight-marketplace/pkg/errors"
	"freight-marketplace/pkg/utils"
)

// respondWithError maps service errors onto the HTTP envelope. Every handler
// funnels through here so a given error always produces the same status.
func respondWithError(c *gin.Context, err error) {
	var validationErr *appErrors.ValidationError
	if errors.As(err, &validationErr) {
		utils.ValidationErrorResponse(c, http.StatusBadRequest, validationErr.Violations)
		return
	}

	switch {
	case errors.Is(err, appErrors.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, appErrors.ErrInvalidToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, appErrors.ErrOTPInvalid):
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid OTP")
	case errors.Is(err, appErrors.ErrOTPExpired):
		utils.ErrorResponse(c, http.StatusBadRequest, "OTP has expired, please request a new one")
	case errors.Is(err, appErrors.ErrOTPPending):
		utils.ErrorResponse(c, http.StatusTooManyRequests, "OTP already sent, please wait before requesting another")
	case errors.Is(err, appErrors.ErrInvalidUserType):
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid userType")
	case errors.Is(err, appErrors.ErrInsufficientPermissions):
		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
	case errors.Is(err, shipment.ErrInvalidStatus):
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid consignment status")
	case errors.Is(err, account.ErrNotFound),
		errors.Is(err, fleet.ErrVehicleNotFound),
		errors.Is(err, fleet.ErrDriverNotFound),
		errors.Is(err, shipment.ErrShipmentNotFound),
		errors.Is(err, shipment.ErrConsignmentNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, account.ErrDuplicate),
		errors.Is(err, account.ErrDuplicateEmail),
		errors.Is(err, account.ErrDuplicateMobile),
		errors.Is(err, account.ErrDuplicateGSTNumber),
		errors.Is(err, fleet.ErrDuplicateVehicleNumber),
		errors.Is(err, fleet.ErrDuplicateDriverPhone),
		errors.Is(err, shipment.ErrDuplicateConsignment):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, appErrors.ErrDeliveryFailed):
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to deliver message, please try again later")
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// sessionIdentity pulls the fields the auth middleware stored on the context.
func sessionIdentity(c *gin.Context) (userID uint, userType, companyName string, ok bool) {
	rawID, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User ID not found in context")
		return 0, "", "", false
	}
	userID, idOK := rawID.(uint)
	if !idOK {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid user ID format")
		return 0, "", "", false
	}

	return userID, c.GetString("userType"), c.GetString("companyName"), true
}
