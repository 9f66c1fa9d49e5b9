// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bizhub/internal/delivery/api/middleware"
	"bizhub/internal/delivery/api/router/handler"
	"bizhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckoutHandler *handler.CheckoutHandler
	WebhookHandler  *handler.WebhookHandler
	LeadHandler     *handler.LeadHandler
	SessionHandler  *handler.SessionHandler
	ListingHandler  *handler.ListingHandler
	ReferralHandler *handler.ReferralHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	checkoutHandler *handler.CheckoutHandler
	webhookHandler  *handler.WebhookHandler
	leadHandler     *handler.LeadHandler
	sessionHandler  *handler.SessionHandler
	listingHandler  *handler.ListingHandler
	referralHandler *handler.ReferralHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkoutHandler: params.CheckoutHandler,
		webhookHandler:  params.WebhookHandler,
		leadHandler:     params.LeadHandler,
		sessionHandler:  params.SessionHandler,
		listingHandler:  params.ListingHandler,
		referralHandler: params.ReferralHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public storefront
	e.GET("/catalog", r.checkoutHandler.GetCatalog)
	e.POST("/quote", r.checkoutHandler.Quote)
	e.POST("/leads", r.leadHandler.CreateLead)

	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.POST("/start", r.checkoutHandler.StartCheckout)
		checkoutGroup.POST("/verify", r.checkoutHandler.VerifyPayment)
		checkoutGroup.POST("/event", r.checkoutHandler.CheckoutEvent)
	}

	// Authenticated by the gateway signature, not by session
	e.POST("/webhook/payment", r.webhookHandler.HandlePaymentWebhook)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/business/login", r.sessionHandler.LoginBusiness)
		authGroup.POST("/admin/login", r.sessionHandler.LoginAdmin)
		authGroup.POST("/logout", r.sessionHandler.Logout)
	}

	// Business user routes
	businessGroup := e.Group("/business")
	businessGroup.Use(r.authMiddleware.Authenticate)
	businessGroup.Use(r.authMiddleware.RequireRole(entity.RoleBusiness))
	{
		businessGroup.POST("/listings/:id/checkout", r.listingHandler.StartListingCheckout)
		businessGroup.POST("/listings/payment/verify", r.listingHandler.VerifyListingPayment)
		businessGroup.GET("/listings/:id/certificate/qr", r.listingHandler.CertificateQR)
	}

	referralGroup := e.Group("/referral")
	referralGroup.Use(r.authMiddleware.Authenticate)
	referralGroup.Use(r.authMiddleware.RequireRole(entity.RoleBusiness))
	{
		referralGroup.GET("/wallet", r.referralHandler.GetWallet)
		referralGroup.POST("/withdraw", r.referralHandler.Withdraw)
	}

	// Operator routes
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.PATCH("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
		adminGroup.PATCH("/leads/:id/status", r.adminHandler.UpdateLeadStatus)
		adminGroup.PATCH("/withdrawals/:id/status", r.adminHandler.UpdateWithdrawalStatus)
		adminGroup.GET("/withdrawals/export", r.adminHandler.ExportWithdrawals)
		adminGroup.POST("/listings/:id/approve", r.adminHandler.ApproveListing)
		adminGroup.POST("/listings/:id/reject", r.adminHandler.RejectListing)
	}
}
