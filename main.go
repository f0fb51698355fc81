package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	customerrepo "github.com/bun612/shop-api/customer/repository"
	customersvc "github.com/bun612/shop-api/customer/service"
	api "github.com/bun612/shop-api/handler"
	orderrepo "github.com/bun612/shop-api/order/repository"
	ordersvc "github.com/bun612/shop-api/order/service"
	productrepo "github.com/bun612/shop-api/product/repository"
	productsvc "github.com/bun612/shop-api/product/service"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	db, err := setupDatabase(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to set up database")
	}

	// setup product repository + service
	productRepo := productrepo.NewGormProductRepo(db)
	productService := productsvc.NewProductService(productRepo)
	productHandler := api.NewProductHandler(productService)

	// setup customer repository + service
	customerRepo := customerrepo.NewGormCustomerRepo(db)
	customerService := customersvc.NewCustomerService(customerRepo)
	customerHandler := api.NewCustomerHandler(customerService)

	// setup order repository + service; the order service needs the customer
	// and product repositories for its referential checks
	orderRepo := orderrepo.NewGormOrderRepo(db)
	orderService := ordersvc.NewOrderService(orderRepo, customerRepo, productRepo)
	orderHandler := api.NewOrderHandler(orderService)

	r := gin.New()
	r.Use(gin.Recovery(), gin.Logger(), cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to Shop API",
			"endpoints": gin.H{
				"/products":                   "Product CRUD",
				"/customers":                  "Customer CRUD",
				"/orders":                     "Order CRUD",
				"/init-data":                  "Init sample data",
				"/fix-orders-with-zero-total": "Repair zero order totals",
			},
		})
	})
	r.GET("/init-data", productHandler.SeedData())

	r.GET("/products", productHandler.ListProducts())
	r.POST("/products", productHandler.CreateProduct())
	r.GET("/products/:id", productHandler.GetProduct())
	r.PUT("/products/:id", productHandler.UpdateProduct())
	r.DELETE("/products/:id", productHandler.DeleteProduct())

	r.GET("/customers", customerHandler.ListCustomers())
	r.POST("/customers", customerHandler.CreateCustomer())
	r.GET("/customers/:id", customerHandler.GetCustomer())
	r.PUT("/customers/:id", customerHandler.UpdateCustomer())
	r.DELETE("/customers/:id", customerHandler.DeleteCustomer())

	r.GET("/orders", orderHandler.ListOrders())
	r.POST("/orders", orderHandler.CreateOrder())
	r.GET("/orders/:id", orderHandler.GetOrder())
	r.PUT("/orders/:id", orderHandler.UpdateOrder())
	r.DELETE("/orders/:id", orderHandler.DeleteOrder())

	r.GET("/fix-orders-with-zero-total", orderHandler.FixZeroTotals())

	logrus.WithField("addr", cfg.ListenAddr).Info("shop api listening")
	if err := r.Run(cfg.ListenAddr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
