package handler

import (
	"errors"
	"net/http"

	"vsl-server/internal/apierrors"
	authhandler "vsl-server/internal/auth/handler"
	"vsl-server/internal/campaign/processor"
	"vsl-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor CampaignProcessor
	logger    *observability.Logger
}

func New(processor CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

type GenerateTitlesRequest struct {
	BusinessProfileID string `json:"business_profile_id" binding:"required,uuid"`
}

type GenerateCampaignRequest struct {
	BusinessProfileID string `json:"business_profile_id" binding:"required,uuid"`
	VSLTitle          string `json:"vsl_title" binding:"required,min=1,max=255"`
	Language          string `json:"language" binding:"omitempty,max=10"`
}

// HandleListLanguages returns the supported output languages. It needs no auth.
func (h *Handler) HandleListLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": h.processor.ListLanguages()})
}

func (h *Handler) HandleGenerateTitles(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req GenerateTitlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	titles, err := h.processor.GenerateTitles(ctx, userID, uuid.MustParse(req.BusinessProfileID))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"titles": titles})
}

func (h *Handler) HandleGenerateCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req GenerateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.GenerateCampaign(ctx, userID, processor.GenerateCampaignParams{
		BusinessProfileID: uuid.MustParse(req.BusinessProfileID),
		VSLTitle:          req.VSLTitle,
		Language:          req.Language,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"campaign": campaign})
}

func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	campaigns, err := h.processor.ListCampaigns(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	campaignID, ok := getCampaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	campaignID, ok := getCampaignID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCampaign(ctx, userID, campaignID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted successfully"})
}

func getUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := authhandler.UserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
	}
	return userID, ok
}

func getCampaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
		return uuid.Nil, false
	}
	return campaignID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrProfileNotFound):
		apierrors.NotFound(c, "Business profile not found")
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrInvalidInput):
		apierrors.BadRequest(c, "INVALID_INPUT", err.Error())
	case errors.Is(err, processor.ErrGenerationFailed):
		apierrors.ServiceUnavailable(c, "GENERATION_FAILED", "Content generation failed. Please try again.", err)
	default:
		apierrors.InternalError(c, err)
	}
}
