package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainAccount "freight-marketplace/internal/domain/account"
	"freight-marketplace/internal/usecase/verification"
	"freight-marketplace/pkg/utils"
)

type VerificationHandler struct {
	service *verification.Service
}

func NewVerificationHandler(service *verification.Service) *VerificationHandler {
	return &VerificationHandler{service: service}
}

func (h *VerificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	validate := router.Group("/validate")
	{
		validate.POST("/send-otp", h.SendOTP)
		validate.POST("/verify-otp", h.VerifyOTP)
		validate.POST("/send-email-link", h.SendEmailLink)
		validate.POST("/verify-email-link", h.VerifyEmailLink)
		validate.GET("/verify-email-link", h.VerifyEmailLink)
		validate.POST("/check-email-status", h.CheckEmailStatus)
	}
}

func (h *VerificationHandler) SendOTP(c *gin.Context) {
	var req verification.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SendPhoneOTP(c.Request.Context(), req.MobileNumber); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

func (h *VerificationHandler) VerifyOTP(c *gin.Context) {
	var req verification.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.VerifyPhoneOTP(c.Request.Context(), req.MobileNumber, req.OTP); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Phone number verified successfully", nil)
}

func (h *VerificationHandler) SendEmailLink(c *gin.Context) {
	var req verification.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	role, err := domainAccount.ParseRole(req.UserType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.service.SendEmailVerification(c.Request.Context(), role, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	switch result.Status {
	case verification.EmailStatusAlreadyVerified:
		utils.SuccessResponse(c, http.StatusOK, "Email is already verified", result)
	case verification.EmailStatusTokenPending:
		utils.SuccessResponse(c, http.StatusOK, "A verification link is already active, please check your inbox", result)
	default:
		utils.SuccessResponse(c, http.StatusOK, "Verification email sent successfully", result)
	}
}

// VerifyEmailLink accepts the token either as a query parameter (the link in
// the email) or in a JSON body.
func (h *VerificationHandler) VerifyEmailLink(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		var req verification.VerifyEmailRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.Token
		}
	}

	if err := h.service.VerifyEmailToken(c.Request.Context(), token); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email verified successfully", nil)
}

func (h *VerificationHandler) CheckEmailStatus(c *gin.Context) {
	var req verification.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	role, err := domainAccount.ParseRole(req.UserType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.service.CheckStatus(c.Request.Context(), role, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Email verification status fetched", result)
}
