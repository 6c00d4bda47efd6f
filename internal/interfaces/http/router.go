package http

import (
	"github.com/gin-gonic/gin"

	"datadesk/internal/infrastructure/ratelimit"
	"datadesk/internal/interfaces/http/handlers"
	"datadesk/internal/interfaces/http/middleware"
	"datadesk/internal/shared/logger"
)

// Router assembles the HTTP surface: public endpoints for login and the
// unauthenticated tracking lookups, and the scoped API behind JWT auth.
type Router struct {
	engine *gin.Engine

	authHandler       *handlers.AuthHandler
	ticketHandler     *handlers.TicketHandler
	companyHandler    *handlers.CompanyHandler
	userHandler       *handlers.UserHandler
	assetHandler      *handlers.AssetHandler
	dataCenterHandler *handlers.DataCenterHandler
	settingHandler    *handlers.SettingHandler
	systemLogHandler  *handlers.SystemLogHandler
	reportHandler     *handlers.ReportHandler

	authMiddleware *middleware.AuthMiddleware
	loginLimiter   gin.HandlerFunc
	logger         logger.Interface
}

type RouterConfig struct {
	Mode           string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	authHandler *handlers.AuthHandler,
	ticketHandler *handlers.TicketHandler,
	companyHandler *handlers.CompanyHandler,
	userHandler *handlers.UserHandler,
	assetHandler *handlers.AssetHandler,
	dataCenterHandler *handlers.DataCenterHandler,
	settingHandler *handlers.SettingHandler,
	systemLogHandler *handlers.SystemLogHandler,
	reportHandler *handlers.ReportHandler,
	authMiddleware *middleware.AuthMiddleware,
	limiter ratelimit.RateLimiter,
	log logger.Interface,
) *Router {
	gin.SetMode(ginMode(cfg.Mode))

	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.AllowedOrigins))

	var loginLimiter gin.HandlerFunc
	if limiter != nil {
		loginLimiter = middleware.RateLimit(limiter, ratelimit.LoginLimit, log)
	}

	return &Router{
		engine:            engine,
		authHandler:       authHandler,
		ticketHandler:     ticketHandler,
		companyHandler:    companyHandler,
		userHandler:       userHandler,
		assetHandler:      assetHandler,
		dataCenterHandler: dataCenterHandler,
		settingHandler:    settingHandler,
		systemLogHandler:  systemLogHandler,
		reportHandler:     reportHandler,
		authMiddleware:    authMiddleware,
		loginLimiter:      loginLimiter,
		logger:            log,
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) SetupRoutes() {
	api := r.engine.Group("/api")

	// Public endpoints
	login := api.Group("/auth")
	if r.loginLimiter != nil {
		login.Use(r.loginLimiter)
	}
	login.POST("/login", r.authHandler.Login)

	api.GET("/tickets/tracking/:serialNumber", r.ticketHandler.Track)
	api.GET("/assets/search/:serialNumber", r.assetHandler.Search)

	// Everything below requires a valid token
	authed := api.Group("")
	authed.Use(r.authMiddleware.RequireAuth())

	authed.POST("/auth/logout", r.authHandler.Logout)
	authed.GET("/auth/me", r.authHandler.Me)

	tickets := authed.Group("/tickets")
	{
		tickets.GET("", r.ticketHandler.List)
		tickets.POST("", r.ticketHandler.Create)
		tickets.GET("/:id", r.ticketHandler.Get)
		tickets.PUT("/:id", r.ticketHandler.Update)
		tickets.DELETE("/:id", r.ticketHandler.Delete)
	}

	companies := authed.Group("/companies")
	{
		companies.GET("", r.companyHandler.List)
		companies.POST("", r.companyHandler.Create)
		companies.GET("/:id", r.companyHandler.Get)
		companies.PUT("/:id", r.companyHandler.Update)
		companies.DELETE("/:id", r.companyHandler.Delete)

		companies.GET("/:id/branches", r.companyHandler.ListBranches)
		companies.POST("/:id/branches", r.companyHandler.CreateBranch)
		companies.PUT("/:id/branches/:branchId", r.companyHandler.UpdateBranch)
		companies.DELETE("/:id/branches/:branchId", r.companyHandler.DeleteBranch)
	}

	users := authed.Group("/users")
	{
		users.GET("", r.userHandler.List)
		users.POST("", r.userHandler.Create)
		users.GET("/:id", r.userHandler.Get)
		users.PUT("/:id", r.userHandler.Update)
		users.DELETE("/:id", r.userHandler.Delete)
	}

	assets := authed.Group("/assets")
	{
		assets.GET("", r.assetHandler.List)
		assets.POST("", r.assetHandler.Create)
		assets.GET("/:id", r.assetHandler.Get)
		assets.PUT("/:id", r.assetHandler.Update)
		assets.DELETE("/:id", r.assetHandler.Delete)
		assets.POST("/:id/images", r.assetHandler.AddImage)
		assets.DELETE("/:id/images/:index", r.assetHandler.RemoveImage)
	}

	datacenterLogs := authed.Group("/datacenter/logs")
	{
		datacenterLogs.GET("", r.dataCenterHandler.List)
		datacenterLogs.POST("", r.dataCenterHandler.Create)
		datacenterLogs.GET("/:id", r.dataCenterHandler.Get)
		datacenterLogs.PUT("/:id", r.dataCenterHandler.Update)
		datacenterLogs.PUT("/:id/exit", r.dataCenterHandler.RecordExit)
		datacenterLogs.DELETE("/:id", r.dataCenterHandler.Delete)
	}

	authed.GET("/system-settings", r.settingHandler.List)
	authed.POST("/system-settings", r.settingHandler.Update)

	reports := authed.Group("/reports")
	{
		reports.GET("/dashboard", r.reportHandler.Dashboard)
		reports.GET("/tickets-by-status", r.reportHandler.TicketsByStatus)
		reports.GET("/tickets-by-priority", r.reportHandler.TicketsByPriority)
		reports.GET("/assets-by-type", r.reportHandler.AssetsByType)
	}

	// Audit log is platform operator territory
	systemLogs := authed.Group("/system-logs")
	systemLogs.Use(r.authMiddleware.RequireSuperAdmin())
	systemLogs.GET("", r.systemLogHandler.List)
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
