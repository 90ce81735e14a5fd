package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainAccount "freight-marketplace/internal/domain/account"
	"freight-marketplace/internal/usecase/account"
	"freight-marketplace/pkg/utils"
)

type AccountHandler struct {
	service *account.Service
}

func NewAccountHandler(service *account.Service) *AccountHandler {
	return &AccountHandler{service: service}
}

func (h *AccountHandler) RegisterPublicRoutes(router *gin.RouterGroup, role domainAccount.Role) {
	router.POST("/register", h.Register(role))
	router.POST("/signup", h.Register(role))
	router.POST("/login", h.Login(role))
}

func (h *AccountHandler) RegisterProtectedRoutes(router *gin.RouterGroup, role domainAccount.Role) {
	router.GET("/home", h.Profile(role))
	router.GET("/me", h.Profile(role))
}

func (h *AccountHandler) Register(role domainAccount.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		result, err := h.service.Register(c.Request.Context(), role, &req)
		if err != nil {
			respondWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusCreated, "Registered successfully", result)
	}
}

func (h *AccountHandler) Login(role domainAccount.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req account.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
			return
		}

		result, err := h.service.Login(c.Request.Context(), role, &req)
		if err != nil {
			respondWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", result)
	}
}

// Profile serves both /home and /me. The claimed role must match the route's
// role and the record is re-fetched, so a deleted account gets a 404 even
// with a live token.
func (h *AccountHandler) Profile(role domainAccount.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, userType, _, ok := sessionIdentity(c)
		if !ok {
			return
		}
		if userType != role.String() {
			utils.ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		result, err := h.service.Profile(c.Request.Context(), role, userID)
		if err != nil {
			respondWithError(c, err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Profile fetched successfully", result)
	}
}

func (h *AccountHandler) AllTransporters(c *gin.Context) {
	result, err := h.service.AllTransporters(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessListResponse(c, http.StatusOK, "Transporters fetched successfully", len(result), result)
}
