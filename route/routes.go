package route

import (
	"github.com/ravi-64bit/streetwise/auth"
	"github.com/ravi-64bit/streetwise/controller"
	"github.com/ravi-64bit/streetwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func StreetwiseRoutes(router *gin.Engine) {
	vendorGroup := router.Group("/vendor")
	vendorGroup.Use(utils.VendorMiddleware())
	{
		vendorGroup.GET("/me", controller.GetMyVendor)
		vendorGroup.PUT("/me", controller.UpdateMyVendor)
		vendorGroup.GET("/order-link", controller.GetOrderLink)

		vendorGroup.GET("/menu", controller.GetMyMenu)
		vendorGroup.POST("/menu", controller.AddMenuItem)
		vendorGroup.POST("/menu/excel", controller.BulkAddMenuItems)
		vendorGroup.PUT("/menu/:id", controller.UpdateMenuItem)
		vendorGroup.DELETE("/menu/:id", controller.DeleteMenuItem)

		vendorGroup.GET("/orders", controller.GetMyOrders)
		vendorGroup.DELETE("/orders/:id", controller.DeleteOrder)

		vendorGroup.GET("/plates", controller.GetMyPlates)
		vendorGroup.POST("/plates", controller.OpenPlate)
		vendorGroup.POST("/plates/:id/items", controller.AddItemToPlate)
		vendorGroup.DELETE("/plates/:id", controller.ClosePlate)
	}

	router.POST("/api/auth/login", auth.Login)
	router.POST("/api/auth/refresh", auth.RefreshToken)

	// Customer-facing endpoints behind the per-vendor order link.
	router.GET("/api/menu/:vendor_id", controller.GetVendorMenu)
	router.POST("/api/orders", controller.CreateOrder)
	router.GET("/api/orders/:id", controller.GetOrder)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
