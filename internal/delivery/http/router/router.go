// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mycomart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	CatalogHandler  *handler.CatalogHandler
	RoomHandler     *handler.RoomHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	catalogHandler  *handler.CatalogHandler
	roomHandler     *handler.RoomHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		catalogHandler:  params.CatalogHandler,
		roomHandler:     params.RoomHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	e.POST("/login", r.sessionHandler.Login)
	e.POST("/logout", r.sessionHandler.Logout)
	e.GET("/session", r.sessionHandler.Current)

	// Cart routes; guest/authenticated routing happens in the service
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.GET("/totals", r.cartHandler.Totals)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Checkout state machine
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.POST("", r.checkoutHandler.Start)
		checkoutGroup.POST("/payment", r.checkoutHandler.CompletePayment)
		checkoutGroup.DELETE("", r.checkoutHandler.Cancel)
		checkoutGroup.GET("/state", r.checkoutHandler.State)
	}

	// Catalog routes
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)
	e.GET("/categories", r.catalogHandler.ListCategories)

	// Grow room routes
	roomGroup := e.Group("/rooms")
	{
		roomGroup.GET("", r.roomHandler.List)
		roomGroup.POST("", r.roomHandler.Create)
		roomGroup.GET("/:id", r.roomHandler.Get)
		roomGroup.DELETE("/:id", r.roomHandler.Delete)
		roomGroup.GET("/:id/sensors", r.roomHandler.Sensors)
	}
}
