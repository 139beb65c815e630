package routes

import (
	"gadget-shop/controllers"
	"gadget-shop/models"
	"gadget-shop/repositories"
	"gadget-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	catalogRepo := repositories.NewCatalogRepository()
	storeRepo := repositories.NewStoreRepository(models.SeedOrders())

	productCtrl := controllers.NewProductController(services.NewProductService(catalogRepo))
	cartCtrl := controllers.NewCartController(services.NewCartService(catalogRepo, storeRepo))
	orderCtrl := controllers.NewOrderController(services.NewOrderService(storeRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	router.GET("/cart", cartCtrl.GetCart)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
	router.DELETE("/cart/items/:id", cartCtrl.RemoveItem)

	router.GET("/orders", orderCtrl.GetAllOrders)
	router.POST("/checkout", orderCtrl.Checkout)
}
