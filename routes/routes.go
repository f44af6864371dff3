package routes

import (
	"github.com/Schnretzl/e-commerce-api/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up one route per API operation.
func RegisterRoutes(
	r *gin.Engine,
	cc *controllers.CustomerController,
	ac *controllers.AccountController,
	pc *controllers.ProductController,
	oc *controllers.OrderController,
) {
	customers := r.Group("/customers")
	customers.POST("", cc.CreateCustomer)
	customers.GET("", cc.ListCustomers)
	customers.GET("/:id", cc.GetCustomer)
	customers.PUT("/:id", cc.UpdateCustomer)
	customers.DELETE("/:id", cc.DeleteCustomer)
	customers.GET("/:id/orders", cc.GetOrderHistory)

	accounts := r.Group("/customer_accounts")
	accounts.POST("", ac.CreateAccount)
	accounts.GET("", ac.ListAccounts)
	accounts.GET("/:id", ac.GetAccount)
	accounts.PUT("/:id", ac.UpdateAccount)

	products := r.Group("/products")
	products.POST("", pc.CreateProduct)
	products.GET("", pc.ListProducts)
	products.GET("/:id", pc.GetProduct)
	products.PUT("/:id", pc.UpdateProduct)
	products.DELETE("/:id", pc.DeleteProduct)

	orders := r.Group("/orders")
	orders.POST("", oc.PlaceOrder)
	orders.GET("", oc.ListOrders)
	orders.GET("/:id", oc.GetOrder)
}
