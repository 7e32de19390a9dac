package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fuelstation/internal/handler/api"
	"fuelstation/internal/handler/middleware"
	"fuelstation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	reservationHandler *api.ReservationHandler,
	purchaseHandler *api.PurchaseHandler,
	catalogHandler *api.CatalogHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, reservationHandler, purchaseHandler, catalogHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	purchaseHandler *api.PurchaseHandler,
	catalogHandler *api.CatalogHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/columns", Handler: catalogHandler.ListColumns},
			{Method: http.MethodGet, Path: "/columns/:id/fuels", Handler: catalogHandler.ListColumnFuels},
			{Method: http.MethodGet, Path: "/columns/:id/reservations", Handler: reservationHandler.GetColumnReservations},
			{Method: http.MethodGet, Path: "/fuels", Handler: catalogHandler.ListFuels},
			{Method: http.MethodPost, Path: "/fuels/:id/restock", Handler: catalogHandler.RestockFuel},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(middleware.IdentityMiddleware())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: reservationHandler.CancelReservation},
			})
		}

		purchases := apiGroup.Group("/purchases")
		purchases.Use(middleware.IdentityMiddleware())
		{
			addRoutes(purchases, []route{
				{Method: http.MethodPost, Path: "", Handler: purchaseHandler.CreatePurchase},
			})
		}

		transactions := apiGroup.Group("/transactions")
		transactions.Use(middleware.IdentityMiddleware())
		{
			addRoutes(transactions, []route{
				{Method: http.MethodGet, Path: "", Handler: purchaseHandler.GetUserTransactions},
				{Method: http.MethodGet, Path: "/:id", Handler: purchaseHandler.GetTransaction},
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
