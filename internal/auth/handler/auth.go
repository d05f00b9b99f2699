package handler

import (
	"errors"
	"net/http"
	"strings"

	"vsl-server/internal/apierrors"
	"vsl-server/internal/auth/processor"
	"vsl-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the gin context key holding the authenticated user's id
const UserIDKey = "User-ID"

type Handler struct {
	authProcessor AuthProcessor
	logger        *observability.Logger
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type authResponse struct {
	Message string         `json:"message"`
	User    processor.User `json:"user"`
	Token   string         `json:"token"`
}

func New(authProcessor AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

func (h *Handler) HandleRegister(c *gin.Context) {
	ctx := c.Request.Context()
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	registered, err := h.authProcessor.Register(ctx, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		Message: "User registered successfully",
		User:    registered.User,
		Token:   registered.Token,
	})
}

func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	loggedIn, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{
		Message: "Login successful",
		User:    loggedIn.User,
		Token:   loggedIn.Token,
	})
}

func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, processor.ErrExpiredToken) {
			apierrors.Unauthorized(c, "Token expired")
			return
		}
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	c.Set(UserIDKey, claims.Subject)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: claims.Subject}))
	c.Next()
}

func (h *Handler) HandleGetMe(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := UserID(c)
	if !ok {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	user, err := h.authProcessor.GetUser(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UserID returns the authenticated user's id set by HandleJWTMiddleware.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrEmailExists):
		apierrors.Conflict(c, "EMAIL_EXISTS", "User already exists")
	case errors.Is(err, processor.ErrInvalidCredentials):
		apierrors.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, processor.ErrUserNotFound):
		apierrors.NotFound(c, "User not found")
	default:
		apierrors.InternalError(c, err)
	}
}
