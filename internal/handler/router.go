package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"coworking-booking/internal/handler/api"
	"coworking-booking/internal/handler/middleware"
	"coworking-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	Logger             *middleware.Logger
	Slog               *slog.Logger
	Limiter            middleware.Limiter `optional:"true"`
	AuthMiddleware     *middleware.AuthMiddleware
	ReservationHandler *api.ReservationHandler
	CalendarHandler    *api.CalendarHandler
	RoomHandler        *api.RoomHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rateLimit := middleware.RateLimit(p.Limiter, p.Config.RateLimit.Capacity, p.Slog)

	apiGroup := engine.Group("/api")
	{
		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: p.RoomHandler.List},
			{Method: http.MethodGet, Path: "/:id", Handler: p.RoomHandler.Get},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: p.RoomHandler.Quote},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(p.AuthMiddleware.RequireAuth())

		reservations := authRequired.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: p.ReservationHandler.Create, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodGet, Path: "", Handler: p.ReservationHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: p.ReservationHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: p.ReservationHandler.ChangeStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.ReservationHandler.Delete, Mw: []gin.HandlerFunc{p.AuthMiddleware.RequireAdmin()}},
			})
		}

		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/clients/:id/reservations", Handler: p.ReservationHandler.ListByClient},
			{Method: http.MethodGet, Path: "/calendar", Handler: p.CalendarHandler.Get},
		})
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
