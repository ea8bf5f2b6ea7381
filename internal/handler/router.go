package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	"hotel-backoffice/internal/handler/api"
	"hotel-backoffice/internal/handler/middleware"
	"hotel-backoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, dashboardHandler *api.DashboardHandler, reservationHandler *api.ReservationHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg.HTTP, dashboardHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, httpCfg config.HTTPConfig, dashboardHandler *api.DashboardHandler, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	responseCache := middleware.NewResponseCache(httpCfg.DashboardCacheTTL)
	limiter := middleware.NewIPRateLimiter(rate.Limit(httpCfg.MutationRatePerSec), httpCfg.MutationBurst)
	mutation := []gin.HandlerFunc{limiter.Middleware(), responseCache.Invalidate()}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: dashboardHandler.GetDashboard, Mw: []gin.HandlerFunc{responseCache.Cache()}},
			{Method: http.MethodGet, Path: "/rooms/:id/timeline", Handler: dashboardHandler.GetRoomTimeline},
		})

		reservations := apiGroup.Group("/reservations/:id")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/change-room/candidates", Handler: reservationHandler.ChangeRoomCandidates},
				{Method: http.MethodGet, Path: "/swap/candidates", Handler: reservationHandler.SwapCandidates},
				{Method: http.MethodPost, Path: "/swap/preview", Handler: reservationHandler.PreviewSwap},
				{Method: http.MethodPost, Path: "/swap", Handler: reservationHandler.Swap, Mw: mutation},
				{Method: http.MethodPost, Path: "/change-room", Handler: reservationHandler.ChangeRoom, Mw: mutation},
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
		hs := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		hs = append(hs, r.Mw...)
		hs = append(hs, r.Handler)
		g.Handle(r.Method, r.Path, hs...)
	}
}
