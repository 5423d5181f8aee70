package api

import (
	"net/http"

	"lgh_sales/internal/sales"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitRoutes registers the report endpoints on the given Gin engine.
// It initializes the storage, service, and handler, then binds each HTTP
// method and path to the appropriate handler function.
func InitRoutes(e *gin.Engine, logger *zap.Logger) {
	salesStorage := sales.NewLocalStorage()
	salesService := sales.NewService(salesStorage, logger)
	reportsHandler := NewReportsHandler(salesService, logger)

	e.POST("/reports", reportsHandler.handleCreateReport)
	e.GET("/reports", reportsHandler.handleListReports)
	e.GET("/reports/:id", reportsHandler.handleGetReport)
	e.GET("/reports/:id/txt", reportsHandler.handleGetReportText)
	e.GET("/example", reportsHandler.handleExample)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
