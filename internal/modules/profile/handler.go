package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resolvehub/internal/domain"
	"resolvehub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetProfile)
	rg.PUT("/profile", h.SaveProfile)
	rg.GET("/profile/completion", h.GetCompletion)
	rg.GET("/profile/eligibility", h.GetEligibility)
	rg.POST("/profile/permanent-number", h.IssuePermanentNumber)
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")

	p, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch err {
		case ErrProfileNotFound:
			response.Error(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "Profile has not been created yet")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) SaveProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := domain.UserRole(c.GetString("role"))

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	p, err := h.service.SaveProfile(c.Request.Context(), userID, role, req.Document)
	if err != nil {
		switch err {
		case ErrInvalidRole:
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Unknown platform role")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save profile")
		}
		return
	}

	body := gin.H{"profile": p}
	if warnings := FormatWarnings(p.Document); warnings != nil {
		body["warnings"] = warnings
	}
	response.Success(c, http.StatusOK, body)
}

func (h *Handler) GetCompletion(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := domain.UserRole(c.GetString("role"))

	status, err := h.service.GetCompletion(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute completion")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"completion": status})
}

func (h *Handler) GetEligibility(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := domain.UserRole(c.GetString("role"))

	eligible, err := h.service.IsEligible(c.Request.Context(), userID, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute eligibility")
		return
	}

	response.Success(c, http.StatusOK, EligibilityResponse{Eligible: eligible})
}

func (h *Handler) IssuePermanentNumber(c *gin.Context) {
	userID := c.GetInt64("user_id")

	number, err := h.service.IssuePermanentNumber(c.Request.Context(), userID)
	if err != nil {
		switch err {
		case ErrProfileNotFound:
			response.Error(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "Profile has not been created yet")
		case ErrNotEligibleForNumber:
			response.Error(c, http.StatusConflict, "INCOMPLETE_PROFILE", "Mandatory profile sections are incomplete")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue permanent number")
		}
		return
	}

	response.Success(c, http.StatusOK, PermanentNumberResponse{PermanentNumber: number})
}
