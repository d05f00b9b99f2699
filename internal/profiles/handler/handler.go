package handler

import (
	"errors"
	"net/http"

	"vsl-server/internal/apierrors"
	authhandler "vsl-server/internal/auth/handler"
	"vsl-server/internal/observability"
	"vsl-server/internal/profiles/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor ProfileProcessor
	logger    *observability.Logger
}

func New(processor ProfileProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ProfileRequest is the body of create and update calls
type ProfileRequest struct {
	Offer    string `json:"offer" binding:"required,min=1,max=5000"`
	Avatar   string `json:"avatar" binding:"required,min=1,max=5000"`
	Problems string `json:"problems" binding:"required,min=1,max=5000"`
	Desires  string `json:"desires" binding:"required,min=1,max=5000"`
	Tone     string `json:"tone" binding:"required,oneof=Professional Funny Inspiring Direct"`
	Language string `json:"language" binding:"omitempty,max=10"`
}

func (r ProfileRequest) input() processor.ProfileInput {
	return processor.ProfileInput{
		Offer:    r.Offer,
		Avatar:   r.Avatar,
		Problems: r.Problems,
		Desires:  r.Desires,
		Tone:     r.Tone,
		Language: r.Language,
	}
}

func (h *Handler) HandleCreateProfile(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	profile, err := h.processor.CreateProfile(ctx, userID, req.input())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Business profile created successfully",
		"profile": profile,
	})
}

func (h *Handler) HandleListProfiles(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := authhandler.UserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	profiles, err := h.processor.ListProfiles(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *Handler) HandleGetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	userID, profileID, ok := h.ids(c)
	if !ok {
		return
	}

	profile, err := h.processor.GetProfile(ctx, userID, profileID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *Handler) HandleUpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()
	userID, profileID, ok := h.ids(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	profile, err := h.processor.UpdateProfile(ctx, userID, profileID, req.input())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Business profile updated successfully",
		"profile": profile,
	})
}

func (h *Handler) HandleDeleteProfile(c *gin.Context) {
	ctx := c.Request.Context()
	userID, profileID, ok := h.ids(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteProfile(ctx, userID, profileID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business profile deleted successfully"})
}

// ids reads the caller and the :profile_id path parameter, writing the error
// response itself when either is unusable.
func (h *Handler) ids(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := authhandler.UserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return uuid.Nil, uuid.Nil, false
	}
	profileID, err := uuid.Parse(c.Param("profile_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid profile ID")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, profileID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrProfileNotFound):
		apierrors.NotFound(c, "Business profile not found")
	case errors.Is(err, processor.ErrInvalidTone):
		apierrors.BadRequest(c, "INVALID_INPUT", "tone must be one of: Professional Funny Inspiring Direct")
	case errors.Is(err, processor.ErrUnsupportedLanguage):
		apierrors.BadRequest(c, "UNSUPPORTED_LANGUAGE", "Unsupported language code")
	default:
		apierrors.InternalError(c, err)
	}
}
