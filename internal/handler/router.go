package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-booking/internal/handler/api"
	"event-booking/internal/handler/middleware"
	"event-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, eventHandler *api.EventHandler, draftHandler *api.DraftHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, eventHandler, draftHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, eventHandler *api.EventHandler, draftHandler *api.DraftHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: eventHandler.GetEvent},
				{Method: http.MethodGet, Path: "/:id/price-preview", Handler: eventHandler.PricePreview},
			})
		}

		coupons := apiGroup.Group("/coupons")
		{
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "/suggested", Handler: eventHandler.SuggestedCoupons},
			})
		}

		// Drafts work for anonymous users too; a valid token just attaches
		// the user to coupon validation requests.
		drafts := apiGroup.Group("/drafts")
		drafts.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: draftHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: draftHandler.Get},
				{Method: http.MethodPut, Path: "/:id/date", Handler: draftHandler.SelectDate},
				{Method: http.MethodPut, Path: "/:id/quantity", Handler: draftHandler.SetQuantity},
				{Method: http.MethodPut, Path: "/:id/participants/:index", Handler: draftHandler.SetParticipant},
				{Method: http.MethodPost, Path: "/:id/coupon", Handler: draftHandler.ApplyCoupon},
				{Method: http.MethodDelete, Path: "/:id/coupon", Handler: draftHandler.RemoveCoupon},
				{Method: http.MethodPost, Path: "/:id/proceed", Handler: draftHandler.Proceed},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
