package api

import (
	"net/http"

	authDelivery "shop-backend/internal/auth/delivery"
	authUsecase "shop-backend/internal/auth/usecase"
	productDelivery "shop-backend/internal/product/delivery"
	productUsecase "shop-backend/internal/product/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, productUc productUsecase.ProductUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	productHandler := productDelivery.NewProductHandler(productUc)
	auth := authDelivery.NewAuthenticator(authUc)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello World")
	})

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// User routes
	users := r.Group("/users")
	{
		users.GET("", authHandler.ListUsers)
		users.POST("", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.POST("/logout", auth.Require(authHandler.Logout))
		users.GET("/:id", authHandler.GetUser)
		users.PATCH("/:id", auth.Require(authHandler.UpdateUser))
		users.DELETE("/:id", auth.Require(authHandler.DeleteUser))
	}

	// Product routes (writes are protected)
	products := r.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", auth.Require(productHandler.CreateProduct))
		products.PATCH("/:id", auth.Require(productHandler.UpdateProduct))
		products.DELETE("/:id", auth.Require(productHandler.DeleteProduct))
	}
}
