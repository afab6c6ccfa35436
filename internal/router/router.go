package router

import (
	"log/slog"

	"NGO_Platform/internal/handler"
	"NGO_Platform/internal/metrics"
	"NGO_Platform/internal/middleware"
	"NGO_Platform/internal/model"
	"NGO_Platform/internal/service"
	"NGO_Platform/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Deps struct {
	Store  *store.Store
	Auth   *service.AuthService
	Events *service.Events
	Logger *slog.Logger

	// Metrics and Gatherer are optional; without them /metrics is not mounted.
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer

	// AuthLimiter is optional and guards the unauthenticated /api/auth routes.
	AuthLimiter *middleware.RateLimiter
	CORSOrigin  string

	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding
	// headers are honored. Empty means ClientIP is always the socket peer.
	TrustedProxies []string
}

func New(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	if err := r.SetTrustedProxies(d.TrustedProxies); err != nil {
		logger.Warn("invalid trusted proxies, trusting none", slog.String("error", err.Error()))
		_ = r.SetTrustedProxies(nil)
	}

	// Logging and metrics wrap recovery so a panicking request is still counted.
	r.Use(middleware.NewLoggingMiddleware(logger))
	var donations handler.DonationRecorder
	if d.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(d.Metrics))
		donations = d.Metrics
	}
	r.Use(
		middleware.NewRecoveryMiddleware(logger),
		middleware.NewCORSMiddleware(d.CORSOrigin),
	)
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(d.Gatherer)))
	}

	authRequired := middleware.AuthMiddleware(d.Auth)
	optionalAuth := middleware.OptionalAuth(d.Auth)
	reviewer := middleware.RequireUserType(model.UserTypeNGO, model.UserTypePlatformAdmin)

	authH := handler.NewAuthHandler(d.Auth)
	campaign := handler.NewCampaignHandler(d.Store)
	donation := handler.NewDonationHandler(d.Store, donations, d.Events)
	volunteer := handler.NewVolunteerHandler(d.Store)
	equipment := handler.NewEquipmentHandler(d.Store)
	user := handler.NewUserHandler(d.Store)
	application := handler.NewApplicationHandler(d.Store, d.Events)

	api := r.Group("/api")
	api.GET("/health", handler.Health)

	authGroup := api.Group("/auth")
	if d.AuthLimiter != nil {
		authGroup.Use(d.AuthLimiter.Middleware())
	}
	{
		authGroup.POST("/register", authH.Register)
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/forgot-password", authH.ForgotPassword)
		authGroup.POST("/reset-password", authH.ResetPassword)
		authGroup.POST("/google", authH.Google)
		authGroup.POST("/logout", authRequired, authH.Logout)
	}

	campaignGroup := api.Group("/campaigns")
	{
		campaignGroup.GET("", campaign.List)
		campaignGroup.GET("/:id", campaign.Get)
		campaignGroup.POST("", authRequired, reviewer, campaign.Create)
		campaignGroup.PUT("/:id", authRequired, reviewer, campaign.Update)
	}

	donationGroup := api.Group("/donations")
	{
		donationGroup.GET("", donation.List)
		donationGroup.GET("/transaction/:transactionId", donation.GetByTransaction)
		donationGroup.POST("", optionalAuth, donation.Create)
	}

	volunteerGroup := api.Group("/volunteers")
	{
		volunteerGroup.GET("", volunteer.List)
		volunteerGroup.POST("", optionalAuth, volunteer.Create)
	}

	equipmentGroup := api.Group("/equipment")
	{
		equipmentGroup.GET("", equipment.List)
		equipmentGroup.POST("", authRequired, reviewer, equipment.Create)
		equipmentGroup.PUT("/:id", authRequired, reviewer, equipment.Update)
		equipmentGroup.DELETE("/:id", authRequired, reviewer, equipment.Delete)
	}

	userGroup := api.Group("/users")
	userGroup.Use(authRequired)
	{
		userGroup.GET("/:id", user.Get)
		userGroup.PUT("/:id", user.Update)
	}

	applicationGroup := api.Group("/volunteer-applications")
	applicationGroup.Use(authRequired)
	{
		applicationGroup.POST("", application.Create)
		applicationGroup.GET("", application.List)
		applicationGroup.PUT("/:id", reviewer, application.Update)
	}

	return r
}
