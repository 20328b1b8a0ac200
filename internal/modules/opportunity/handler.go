package opportunity

import (
	"net/http"
	"strconv"

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
	rg.GET("/opportunities", h.ListOpportunities)
	rg.POST("/opportunities/:id/bids", h.PlaceBid)
	rg.GET("/bids", h.GetMyBids)
}

func (h *Handler) ListOpportunities(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := domain.UserRole(c.GetString("role"))

	var q ListOpportunitiesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	items, err := h.service.ListOpportunities(c.Request.Context(), userID, role, q)
	if err != nil {
		switch err {
		case ErrNotEligible:
			response.Error(c, http.StatusForbidden, "NOT_ELIGIBLE", "Verified professional membership required")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list opportunities")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"opportunities": items})
}

func (h *Handler) PlaceBid(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := domain.UserRole(c.GetString("role"))

	opportunityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid opportunity id")
		return
	}

	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	b, err := h.service.PlaceBid(c.Request.Context(), userID, role, opportunityID, req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only provider roles can bid")
		case ErrNotEligible:
			response.Error(c, http.StatusForbidden, "NOT_ELIGIBLE", "Verified professional membership required")
		case ErrOpportunityMissing:
			response.Error(c, http.StatusNotFound, "OPPORTUNITY_NOT_FOUND", "Opportunity not found")
		case ErrOpportunityClosed:
			response.Error(c, http.StatusConflict, "OPPORTUNITY_CLOSED", "Opportunity is no longer open")
		case ErrDuplicateBid:
			response.Error(c, http.StatusConflict, "DUPLICATE_BID", "A bid was already placed on this opportunity")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid bid")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to place bid")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"bid": b})
}

func (h *Handler) GetMyBids(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := domain.UserRole(c.GetString("role"))

	bids, err := h.service.GetMyBids(c.Request.Context(), userID, role)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only provider roles have bids")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bids")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bids": bids})
}
