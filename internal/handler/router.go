package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, bookingHandler *api.BookingHandler, itemHandler *api.ItemHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, bookingHandler, itemHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, itemHandler *api.ItemHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck(cfg.Store.Driver))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
			{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookerBookings},
			{Method: http.MethodGet, Path: "/owner", Handler: bookingHandler.ListOwnerBookings},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
			{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.DecideBooking},
		})

		items := apiGroup.Group("/items")
		addRoutes(items, []route{
			{Method: http.MethodGet, Path: "", Handler: itemHandler.ListOwnerItems},
			{Method: http.MethodGet, Path: "/:id", Handler: itemHandler.GetItem},
		})
	}
}

// @Summary Health check
// @Description Reports liveness and the active booking store driver
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(storeDriver string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"store":  storeDriver,
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
