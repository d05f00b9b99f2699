package api

import (
	"net/http"
	"time"

	authHandler "vsl-server/internal/auth/handler"
	campaignHandler "vsl-server/internal/campaign/handler"
	profileHandler "vsl-server/internal/profiles/handler"
	"vsl-server/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	authHandler     authHandler.Handler
	profileHandler  profileHandler.Handler
	campaignHandler campaignHandler.Handler
	rateLimiter     *ratelimit.Service
	now             func() time.Time
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	profileHandler profileHandler.Handler,
	campaignHandler campaignHandler.Handler,
	rateLimiter *ratelimit.Service,
) API {
	return API{
		router:          router,
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		campaignHandler: campaignHandler,
		rateLimiter:     rateLimiter,
		now:             time.Now,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		authGroup.POST("/register", a.authHandler.HandleRegister)
		authGroup.POST("/login", a.authHandler.HandleLogin)
		authGroup.GET("/me", a.authHandler.HandleJWTMiddleware, a.authHandler.HandleGetMe)
	}

	profileGroup := apiGroup.Group("/profiles", a.authHandler.HandleJWTMiddleware)
	{
		profileGroup.POST("", a.profileHandler.HandleCreateProfile)
		profileGroup.GET("", a.profileHandler.HandleListProfiles)
		profileGroup.GET("/:profile_id", a.profileHandler.HandleGetProfile)
		profileGroup.PUT("/:profile_id", a.profileHandler.HandleUpdateProfile)
		profileGroup.DELETE("/:profile_id", a.profileHandler.HandleDeleteProfile)
	}

	apiGroup.GET("/campaigns/languages", a.campaignHandler.HandleListLanguages)
	campaignGroup := apiGroup.Group("/campaigns", a.authHandler.HandleJWTMiddleware)
	{
		limited := a.rateLimiter.Middleware()
		campaignGroup.POST("/generate-titles", limited, a.campaignHandler.HandleGenerateTitles)
		campaignGroup.POST("/generate", limited, a.campaignHandler.HandleGenerateCampaign)
		campaignGroup.GET("", a.campaignHandler.HandleListCampaigns)
		campaignGroup.GET("/:campaign_id", a.campaignHandler.HandleGetCampaign)
		campaignGroup.DELETE("/:campaign_id", a.campaignHandler.HandleDeleteCampaign)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": a.now().UTC().Format(time.RFC3339),
		})
	})
}
