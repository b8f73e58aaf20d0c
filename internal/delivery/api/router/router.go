// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"courier/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler       *handler.OrderHandler
	NavigationHandler  *handler.NavigationHandler
	DeliveryHandler    *handler.DeliveryHandler
	DeliverymanHandler *handler.DeliverymanHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler       *handler.OrderHandler
	navigationHandler  *handler.NavigationHandler
	deliveryHandler    *handler.DeliveryHandler
	deliverymanHandler *handler.DeliverymanHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:       params.OrderHandler,
		navigationHandler:  params.NavigationHandler,
		deliveryHandler:    params.DeliveryHandler,
		deliverymanHandler: params.DeliverymanHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Orders addressed by id alone or by a scanned reference
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/ref/:ref", r.orderHandler.ResolveReference)
		ordersGroup.POST("/scan", r.deliveryHandler.ScanOrder)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.PATCH("/:id/status", r.orderHandler.UpdateOrderStatus)
	}

	// Orders filed under an owner
	ownerOrderGroup := apiV1.Group("/owners/:ownerId/orders/:orderId")
	{
		ownerOrderGroup.GET("", r.orderHandler.GetOwnerOrder)
		ownerOrderGroup.PATCH("/status", r.orderHandler.UpdateOwnerOrderStatus)
		ownerOrderGroup.POST("/accept", r.orderHandler.AcceptOrder)
		ownerOrderGroup.POST("/start", r.orderHandler.StartDelivery)
		ownerOrderGroup.POST("/deliver", r.deliveryHandler.ConfirmDelivery)
		ownerOrderGroup.GET("/navigation", r.navigationHandler.GetNavigation)
		ownerOrderGroup.GET("/qr", r.deliveryHandler.GetOrderQRCode)
	}

	apiV1.GET("/regions", r.navigationHandler.ListRegions)

	// Courier accounts
	deliverymanGroup := apiV1.Group("/deliverymen")
	{
		deliverymanGroup.GET("", r.deliverymanHandler.FindDeliveryman)
		deliverymanGroup.POST("/applications", r.deliverymanHandler.SubmitApplication)
		deliverymanGroup.GET("/status", r.deliverymanHandler.VerifyStatus)
		deliverymanGroup.GET("/:id", r.deliverymanHandler.GetDeliveryman)
	}
}
