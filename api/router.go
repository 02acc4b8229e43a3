// Package api exposes the order and driver endpoints over HTTP.
package api

import (
	"foodexpress/pkg/logger"
	"foodexpress/pkg/models"
	"foodexpress/service"
	"foodexpress/storage"

	"github.com/gin-gonic/gin"
)

type handler struct {
	svc  service.IServiceManager
	auth storage.IAuthStorage
	log  logger.ILogger
}

func NewRouter(svc service.IServiceManager, auth storage.IAuthStorage, log logger.ILogger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())

	h := &handler{svc: svc, auth: auth, log: log}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	orders := r.Group("/orders", h.authenticated())
	{
		orders.POST("/", h.makeOrder)
		orders.GET("/details/:orderId", h.getOrder)
		orders.GET("/user-orders", h.getUserOrders)
		orders.GET("/order-items/:orderId", h.getOrderItems)
	}

	drivers := r.Group("/drivers", h.authenticated())
	{
		drivers.POST("/register", h.becomeDriver)
		drivers.GET("/become_available", h.changeDriverStatus(models.DriverStatusAvailable))
		drivers.GET("/become_unavailable", h.changeDriverStatus(models.DriverStatusUnavailable))
	}

	return r
}
