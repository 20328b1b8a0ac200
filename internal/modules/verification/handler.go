package verification

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resolvehub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/verification/membership", h.VerifyMembership)
	rg.POST("/verification/document", h.VerifyDocument)
}

func (h *Handler) VerifyMembership(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req VerifyMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	result, err := h.service.VerifyMembership(c.Request.Context(), userID, req.EntryIndex)
	if err != nil {
		switch err {
		case ErrProfileNotFound:
			response.Error(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "Profile has not been created yet")
		case ErrMembershipNotFound:
			response.Error(c, http.StatusNotFound, "MEMBERSHIP_NOT_FOUND", "No membership entry at that index")
		case ErrMembershipMalformed:
			response.Error(c, http.StatusBadRequest, "MEMBERSHIP_MALFORMED", "Membership entry is not an object")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Membership verification failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"verification": result})
}

func (h *Handler) VerifyDocument(c *gin.Context) {
	var req VerifyDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	check, err := h.service.VerifyDocument(c.Request.Context(), req.FileName, req.DocumentType)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Document verification failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"check": check})
}
