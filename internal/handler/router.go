package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pms-calendar/internal/domain/user"
	"pms-calendar/internal/handler/api"
	"pms-calendar/internal/handler/middleware"
	"pms-calendar/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Calendar *api.CalendarHandler
	Room     *api.RoomHandler
	Booking  *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

// Viewers read, operators also take bookings, admins also manage rooms, prices and blocks.
func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},

			{Method: http.MethodPut, Path: "/:id/prices", Handler: h.Calendar.SetPrice, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodGet, Path: "/:id/prices", Handler: h.Calendar.ListPriceRanges},
			{Method: http.MethodDelete, Path: "/:id/prices/:rangeId", Handler: h.Calendar.DeletePriceRange, Mw: []gin.HandlerFunc{admin}},

			{Method: http.MethodPut, Path: "/:id/blocks", Handler: h.Calendar.BlockDates, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodGet, Path: "/:id/blocks", Handler: h.Calendar.ListBlockRanges},
			{Method: http.MethodDelete, Path: "/:id/blocks/:rangeId", Handler: h.Calendar.DeleteBlockRange, Mw: []gin.HandlerFunc{admin}},

			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Calendar.GetAvailability},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Calendar.Quote},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Booking.ListByRoom},
		})

		cal := apiGroup.Group("/calendar")
		addRoutes(cal, []route{
			{Method: http.MethodGet, Path: "/prices", Handler: h.Calendar.GetDailyPrices},
			{Method: http.MethodGet, Path: "/month", Handler: h.Calendar.MonthCalendar},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{operator}},
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
